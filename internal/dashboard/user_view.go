package dashboard

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/edumaster/backend/internal/app/models/dto"
	"github.com/edumaster/backend/internal/pkg/apiclient"
)

// activityWindow is the lookback for classifying a user as active.
const activityWindow = 30 * 24 * time.Hour

// UserFilter is the filter state of the user management view.
type UserFilter struct {
	Search string
	Role   string // "all", "student", "instructor" or "admin"
}

// UserView is the user management view controller, including the detail
// drawer state.
type UserView struct {
	client    *apiclient.Client
	notifier  Notifier
	confirmer Confirmer
	logger    zerolog.Logger

	Users      []*dto.AdminUser
	Loading    bool
	Selected   *dto.AdminUser
	DetailOpen bool
}

// NewUserView creates the user management view controller.
func NewUserView(client *apiclient.Client, notifier Notifier, confirmer Confirmer, logger zerolog.Logger) *UserView {
	return &UserView{
		client:    client,
		notifier:  notifier,
		confirmer: confirmer,
		logger:    logger,
	}
}

// Load fetches all users.
func (v *UserView) Load(ctx context.Context) {
	v.Loading = true
	defer func() { v.Loading = false }()

	users, err := v.client.ListAdminUsers(ctx)
	if err != nil {
		v.logger.Error().Err(err).Msg("Failed to load users")
		v.notifier.Error("Failed to load users")
		v.Users = nil
		return
	}
	v.Users = users
}

// View opens the detail drawer for a user.
func (v *UserView) View(user *dto.AdminUser) {
	v.Selected = user
	v.DetailOpen = true
}

// CloseDetail closes the detail drawer.
func (v *UserView) CloseDetail() {
	v.Selected = nil
	v.DetailOpen = false
}

// ChangeRole updates a user's role. On success the list is reloaded and the
// open detail drawer is patched in place so it reflects the change without
// waiting for the reload.
func (v *UserView) ChangeRole(ctx context.Context, userID int64, role string) {
	if err := v.client.SetUserRole(ctx, userID, role); err != nil {
		v.logger.Error().Err(err).Int64("userId", userID).Str("role", role).Msg("Failed to change user role")
		v.notifier.Error("Failed to change user role")
		return
	}

	if v.Selected != nil && v.Selected.ID == userID {
		v.Selected.Role = strings.ToUpper(strings.TrimSpace(role))
	}

	v.notifier.Success("User role updated")
	v.Load(ctx)
}

// Delete removes a user after confirmation, reloads the list and closes the
// detail drawer if it showed the deleted user.
func (v *UserView) Delete(ctx context.Context, userID int64) {
	if !v.confirmer.Confirm(ctx, fmt.Sprintf("Delete user %d? This cannot be undone.", userID)) {
		return
	}
	if err := v.client.DeleteUser(ctx, userID); err != nil {
		v.logger.Error().Err(err).Int64("userId", userID).Msg("Failed to delete user")
		v.notifier.Error("Failed to delete user")
		return
	}

	if v.Selected != nil && v.Selected.ID == userID {
		v.CloseDetail()
	}

	v.notifier.Success("User deleted")
	v.Load(ctx)
}

// FilterUsers returns the users matching the filter. A user matches when
// name or email contains the search text (case-insensitive) and the role
// filter is "all" or the user's role equals the filter value upper-cased.
func FilterUsers(users []*dto.AdminUser, filter UserFilter) []*dto.AdminUser {
	search := strings.ToLower(filter.Search)

	result := []*dto.AdminUser{}
	for _, u := range users {
		matchesSearch := strings.Contains(strings.ToLower(u.Name), search) ||
			strings.Contains(strings.ToLower(u.Email), search)
		matchesRole := filter.Role == "all" || u.Role == strings.ToUpper(filter.Role)

		if matchesSearch && matchesRole {
			result = append(result, u)
		}
	}
	return result
}

// IsActive reports whether the user's last update falls within the 30-day
// activity window.
func IsActive(updatedAt, now time.Time) bool {
	return now.Sub(updatedAt) <= activityWindow
}
