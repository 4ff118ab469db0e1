package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"servicehub/internal/domain"
	"servicehub/internal/pkg/apperr"
)

type fakeTokens struct {
	token   string
	cleared bool
}

func (f *fakeTokens) Token() string { return f.token }
func (f *fakeTokens) Clear()        { f.cleared = true; f.token = "" }

func newTestClient(t *testing.T, handler http.Handler) (*Client, *fakeTokens) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	tokens := &fakeTokens{token: "test-token"}
	return NewClient(srv.URL, 5*time.Second, tokens, zap.NewNop()), tokens
}

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestClient_ListBookings(t *testing.T) {
	r := testRouter()
	var gotAuth, gotRequestID string
	r.GET("/bookings/", func(c *gin.Context) {
		gotAuth = c.GetHeader("Authorization")
		gotRequestID = c.GetHeader("X-Request-ID")
		c.JSON(http.StatusOK, []gin.H{
			{"id": 1, "service": 7, "status": "PENDING"},
			{"id": 2, "service": 8, "status": "CONFIRMED"},
		})
	})
	client, _ := newTestClient(t, r)

	bookings, err := client.ListBookings(context.Background())

	assert.NoError(t, err)
	assert.Len(t, bookings, 2)
	assert.Equal(t, domain.BookingConfirmed, bookings[1].Status)
	assert.Equal(t, "Bearer test-token", gotAuth)
	assert.NotEmpty(t, gotRequestID)
}

func TestClient_CreateBooking(t *testing.T) {
	r := testRouter()
	r.POST("/bookings/", func(c *gin.Context) {
		var req CreateBookingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "bad payload"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"id":           42,
			"service":      req.Service,
			"status":       "PENDING",
			"booking_date": req.BookingDate,
		})
	})
	client, _ := newTestClient(t, r)

	b, err := client.CreateBooking(context.Background(), CreateBookingRequest{
		Service:     7,
		BookingDate: time.Date(2026, 3, 11, 10, 0, 0, 0, time.UTC),
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(42), b.ID)
	assert.Equal(t, domain.BookingPending, b.Status)
}

func TestClient_UnauthorizedClearsSession(t *testing.T) {
	r := testRouter()
	r.GET("/bookings/", func(c *gin.Context) {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "token expired"})
	})
	client, tokens := newTestClient(t, r)

	_, err := client.ListBookings(context.Background())

	assert.Equal(t, apperr.KindPermissionDenied, apperr.KindOf(err))
	assert.Equal(t, "token expired", apperr.MessageOf(err))
	assert.True(t, tokens.cleared)
}

func TestClient_ForbiddenClearsSession(t *testing.T) {
	r := testRouter()
	r.DELETE("/categories/3/", func(c *gin.Context) {
		c.JSON(http.StatusForbidden, gin.H{"detail": "admin access required"})
	})
	client, tokens := newTestClient(t, r)

	err := client.DeleteCategory(context.Background(), 3)

	assert.Equal(t, apperr.KindPermissionDenied, apperr.KindOf(err))
	assert.True(t, tokens.cleared)
}

func TestClient_ServerRejectionDetail(t *testing.T) {
	r := testRouter()
	r.POST("/bookings/", func(c *gin.Context) {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "slot already booked"})
	})
	client, tokens := newTestClient(t, r)

	_, err := client.CreateBooking(context.Background(), CreateBookingRequest{Service: 7})

	assert.Equal(t, apperr.KindServerRejected, apperr.KindOf(err))
	assert.Equal(t, "slot already booked", apperr.MessageOf(err))
	assert.False(t, tokens.cleared)
}

func TestClient_ServerRejectionFieldErrors(t *testing.T) {
	r := testRouter()
	r.POST("/reviews/", func(c *gin.Context) {
		c.JSON(http.StatusBadRequest, gin.H{
			"rating": []string{"must be between 1 and 5"},
		})
	})
	client, _ := newTestClient(t, r)

	_, err := client.CreateReview(context.Background(), CreateReviewRequest{Service: 7, Rating: 9})

	assert.Equal(t, apperr.KindServerRejected, apperr.KindOf(err))
	assert.Equal(t, "rating: must be between 1 and 5", apperr.MessageOf(err))
}

func TestClient_ServerRejectionNonFieldErrors(t *testing.T) {
	r := testRouter()
	r.POST("/reviews/", func(c *gin.Context) {
		c.JSON(http.StatusBadRequest, gin.H{
			"non_field_errors": []string{"you already reviewed this service"},
		})
	})
	client, _ := newTestClient(t, r)

	_, err := client.CreateReview(context.Background(), CreateReviewRequest{Service: 7, Rating: 4})

	assert.Equal(t, apperr.KindServerRejected, apperr.KindOf(err))
	assert.Equal(t, "you already reviewed this service", apperr.MessageOf(err))
}

func TestClient_UnparsableErrorBodyFallsBack(t *testing.T) {
	r := testRouter()
	r.GET("/services/", func(c *gin.Context) {
		c.String(http.StatusInternalServerError, "<html>oops</html>")
	})
	client, _ := newTestClient(t, r)

	_, err := client.ListServices(context.Background())

	assert.Equal(t, apperr.KindServerRejected, apperr.KindOf(err))
	assert.Equal(t, "the server could not return the requested data", apperr.MessageOf(err))
}

func TestClient_NetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	client := NewClient(srv.URL, time.Second, &fakeTokens{}, zap.NewNop())
	_, err := client.ListBookings(context.Background())

	assert.Equal(t, apperr.KindNetworkFailure, apperr.KindOf(err))
}

func TestClient_NoContent(t *testing.T) {
	r := testRouter()
	r.DELETE("/reviews/5/", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	client, _ := newTestClient(t, r)

	err := client.DeleteReview(context.Background(), 5)

	assert.NoError(t, err)
}

func TestClient_NoTokenNoAuthHeader(t *testing.T) {
	r := testRouter()
	var gotAuth string
	r.GET("/categories/", func(c *gin.Context) {
		gotAuth = c.GetHeader("Authorization")
		c.JSON(http.StatusOK, []gin.H{})
	})
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	client := NewClient(srv.URL, time.Second, &fakeTokens{}, zap.NewNop())
	_, err := client.ListCategories(context.Background())

	assert.NoError(t, err)
	assert.Empty(t, gotAuth)
}
