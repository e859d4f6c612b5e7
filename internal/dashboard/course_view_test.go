package dashboard

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edumaster/backend/internal/app/models/dto"
	"github.com/edumaster/backend/internal/pkg/apiclient"
)

func adminCourses() []*dto.AdminCourse {
	return []*dto.AdminCourse{
		{ID: 1, Title: "Go for Backend Engineers", Instructor: "John Instructor", Category: "Programming", Status: "published", Students: 120},
		{ID: 2, Title: "Watercolor Basics", Instructor: "Amy Artist", Category: "Art", Status: "draft", Students: 8},
		{ID: 3, Title: "Advanced Go Patterns", Instructor: "John Instructor", Category: "Programming", Status: "draft", Students: 30},
		{ID: 4, Title: "Untitled", Instructor: "Nobody", Category: "", Status: "draft", Students: 0},
	}
}

func TestFilterCoursesEmptyFilterReturnsAll(t *testing.T) {
	courses := adminCourses()

	got := FilterCourses(courses, CourseFilter{Search: "", Status: "all", Category: "all"})

	assert.Equal(t, courses, got)
}

func TestFilterCoursesMatchesTitleOrInstructor(t *testing.T) {
	courses := adminCourses()

	byTitle := FilterCourses(courses, CourseFilter{Search: "watercolor", Status: "all", Category: "all"})
	require.Len(t, byTitle, 1)
	assert.Equal(t, int64(2), byTitle[0].ID)

	byInstructor := FilterCourses(courses, CourseFilter{Search: "john", Status: "all", Category: "all"})
	require.Len(t, byInstructor, 2)
	assert.Equal(t, int64(1), byInstructor[0].ID)
	assert.Equal(t, int64(3), byInstructor[1].ID)
}

func TestFilterCoursesStatusAndCategory(t *testing.T) {
	courses := adminCourses()

	published := FilterCourses(courses, CourseFilter{Status: "published", Category: "all"})
	require.Len(t, published, 1)
	assert.Equal(t, "published", published[0].Status)

	programmingDrafts := FilterCourses(courses, CourseFilter{Status: "draft", Category: "Programming"})
	require.Len(t, programmingDrafts, 1)
	assert.Equal(t, int64(3), programmingDrafts[0].ID)
}

func TestCategoriesDistinctNonEmpty(t *testing.T) {
	got := Categories(adminCourses())

	sort.Strings(got)
	assert.Equal(t, []string{"Art", "Programming"}, got)
}

func TestCourseViewStats(t *testing.T) {
	view := &CourseView{Courses: adminCourses()}

	stats := view.Stats()

	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 1, stats.Published)
	assert.Equal(t, 3, stats.Unpublished)
	assert.Equal(t, 158, stats.Students)
}

// courseBackend is an in-memory stand-in for the admin course endpoints.
type courseBackend struct {
	published map[int64]bool
	deleted   map[int64]bool
}

func newCourseBackendServer(t *testing.T, backend *courseBackend) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()

	router.GET("/api/admin/courses", func(c *gin.Context) {
		courses := []*dto.AdminCourse{}
		for id, published := range backend.published {
			if backend.deleted[id] {
				continue
			}
			status := "draft"
			if published {
				status = "published"
			}
			courses = append(courses, &dto.AdminCourse{ID: id, Title: "Course " + strconv.FormatInt(id, 10), Status: status})
		}
		sort.Slice(courses, func(i, j int) bool { return courses[i].ID < courses[j].ID })
		c.JSON(http.StatusOK, dto.APIResponse{Data: courses, Timestamp: time.Now()})
	})

	router.PUT("/api/admin/courses/:id/status", func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		require.NoError(t, err)
		var req dto.UpdateCourseStatusRequest
		require.NoError(t, c.ShouldBindJSON(&req))
		backend.published[id] = *req.Published
		c.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "updated"}, Timestamp: time.Now()})
	})

	router.DELETE("/api/admin/courses/:id", func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		require.NoError(t, err)
		backend.deleted[id] = true
		c.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "deleted"}, Timestamp: time.Now()})
	})

	return httptest.NewServer(router)
}

func TestCourseViewApproveThenUnpublishRestoresDraft(t *testing.T) {
	backend := &courseBackend{
		published: map[int64]bool{7: false},
		deleted:   map[int64]bool{},
	}
	server := newCourseBackendServer(t, backend)
	defer server.Close()

	notifier := &fakeNotifier{}
	view := NewCourseView(apiclient.NewClient(server.URL), notifier, &fakeConfirmer{accept: true}, testLogger())
	ctx := context.Background()

	view.Load(ctx)
	require.Len(t, view.Courses, 1)
	assert.Equal(t, "draft", view.Courses[0].Status)

	view.Approve(ctx, 7)
	require.Len(t, view.Courses, 1)
	assert.Equal(t, "published", view.Courses[0].Status)

	view.Unpublish(ctx, 7)
	require.Len(t, view.Courses, 1)
	assert.Equal(t, "draft", view.Courses[0].Status)
	assert.False(t, backend.published[7])
	assert.Empty(t, notifier.errors)
}

func TestCourseViewDeleteRequiresConfirmation(t *testing.T) {
	backend := &courseBackend{
		published: map[int64]bool{1: true, 2: false},
		deleted:   map[int64]bool{},
	}
	server := newCourseBackendServer(t, backend)
	defer server.Close()

	confirmer := &fakeConfirmer{accept: false}
	view := NewCourseView(apiclient.NewClient(server.URL), &fakeNotifier{}, confirmer, testLogger())
	ctx := context.Background()

	view.Load(ctx)
	require.Len(t, view.Courses, 2)

	// Declined confirmation leaves everything untouched
	view.Delete(ctx, 1)
	assert.Equal(t, 1, confirmer.asked)
	assert.False(t, backend.deleted[1])
	assert.Len(t, view.Courses, 2)

	confirmer.accept = true
	view.Delete(ctx, 1)
	assert.True(t, backend.deleted[1])
	require.Len(t, view.Courses, 1)
	assert.Equal(t, int64(2), view.Courses[0].ID)
}

func TestCourseViewLoadFailureLeavesListEmpty(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/api/admin/courses", func(c *gin.Context) {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")))
	})
	server := httptest.NewServer(router)
	defer server.Close()

	notifier := &fakeNotifier{}
	view := NewCourseView(apiclient.NewClient(server.URL), notifier, &fakeConfirmer{}, testLogger())

	view.Load(context.Background())

	assert.Empty(t, view.Courses)
	assert.False(t, view.Loading)
	require.Len(t, notifier.errors, 1)
}
