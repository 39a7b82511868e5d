package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/vilohq/vilo-api/internal/api"
	"github.com/vilohq/vilo-api/internal/api/dto"
	"github.com/vilohq/vilo-api/internal/mocks"
	"github.com/vilohq/vilo-api/pkg/logger"
)

func BenchmarkCreateBooking(b *testing.B) {
	// Setup
	gin.SetMode(gin.TestMode)
	mockService := new(mocks.BookingService)
	handler := api.NewBookingHandler(mockService)
	logger.NewLogger("test")

	// Mock auth middleware that sets tenant context
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("tenant_id", "test-tenant-id")
		c.Set("claims", map[string]interface{}{
			"user_id":   "test-user",
			"tenant_id": "test-tenant-id",
			"roles":     []interface{}{"user"},
		})
		c.Next()
	})

	router.POST("/bookings", handler.CreateBooking)

	// Mock service response
	mockService.On("Create", mock.Anything, "test-tenant-id", mock.AnythingOfType("dto.CreateBookingRequest")).Return(&dto.CreateBookingResponse{
		Booking: dto.BookingResponse{
			ID:       "booking-1",
			TenantID: "test-tenant-id",
			RoomID:   "room-1",
			Status:   "pending",
		},
	}, nil)

	// Test payload
	payload := dto.CreateBookingRequest{
		RoomID:    "room-1",
		GuestName: "Load Tester",
		CheckIn:   "2024-06-10",
		CheckOut:  "2024-06-13",
		Guests:    2,
	}

	payloadBytes, _ := json.Marshal(payload)

	b.ResetTimer()
	b.ReportAllocs()

	// Run benchmark
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			req, _ := http.NewRequest("POST", "/bookings", bytes.NewBuffer(payloadBytes))
			req.Header.Set("Content-Type", "application/json")

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != http.StatusCreated {
				b.Errorf("Expected status 201, got %d", w.Code)
			}
		}
	})
}

func BenchmarkCheckConflicts(b *testing.B) {
	// Setup
	gin.SetMode(gin.TestMode)
	mockService := new(mocks.BookingService)
	handler := api.NewBookingHandler(mockService)

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("tenant_id", "test-tenant-id")
		c.Next()
	})

	router.POST("/bookings/check-conflicts", handler.CheckConflicts)

	// Mock response
	mockService.On("CheckConflicts", mock.Anything, "test-tenant-id", mock.AnythingOfType("dto.CheckConflictsRequest")).Return(&dto.CheckConflictsResponse{
		HasConflict:    false,
		Available:      true,
		AvailableUnits: 1,
		Nights:         3,
	}, nil)

	payload := dto.CheckConflictsRequest{
		RoomID:   "room-1",
		CheckIn:  "2024-06-10",
		CheckOut: "2024-06-13",
	}
	payloadBytes, _ := json.Marshal(payload)

	b.ResetTimer()
	b.ReportAllocs()

	// Run benchmark
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			req, _ := http.NewRequest("POST", "/bookings/check-conflicts", bytes.NewBuffer(payloadBytes))
			req.Header.Set("Content-Type", "application/json")

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				b.Errorf("Expected status 200, got %d", w.Code)
			}
		}
	})
}

// TestHighConcurrencyBookingRequests tests the booking endpoint under high
// concurrent load
func TestHighConcurrencyBookingRequests(t *testing.T) {
	// Setup
	gin.SetMode(gin.TestMode)
	mockService := new(mocks.BookingService)
	handler := api.NewBookingHandler(mockService)

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("tenant_id", "test-tenant-id")
		c.Set("claims", map[string]interface{}{
			"user_id":   "test-user",
			"tenant_id": "test-tenant-id",
			"roles":     []interface{}{"user"},
		})
		c.Next()
	})

	router.POST("/bookings", handler.CreateBooking)

	// Mock service response with some latency simulation
	mockService.On("Create", mock.Anything, "test-tenant-id", mock.AnythingOfType("dto.CreateBookingRequest")).Return(&dto.CreateBookingResponse{
		Booking: dto.BookingResponse{ID: "booking-1", Status: "pending"},
	}, nil).Run(func(args mock.Arguments) {
		time.Sleep(1 * time.Millisecond) // Simulate some processing time
	})

	// Test parameters
	numGoroutines := 100
	requestsPerGoroutine := 10
	totalRequests := numGoroutines * requestsPerGoroutine

	payload := dto.CreateBookingRequest{
		RoomID:    "room-1",
		GuestName: "Load Tester",
		CheckIn:   "2024-06-10",
		CheckOut:  "2024-06-13",
		Guests:    2,
	}

	payloadBytes, _ := json.Marshal(payload)

	// Metrics
	var successCount int32
	var errorCount int32
	var totalLatency time.Duration
	var maxLatency time.Duration
	var minLatency time.Duration = time.Hour
	var mutex sync.Mutex

	startTime := time.Now()
	var wg sync.WaitGroup

	// Launch concurrent requests
	for i := 0; i < numGoroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for j := 0; j < requestsPerGoroutine; j++ {
				reqStart := time.Now()

				req, _ := http.NewRequest("POST", "/bookings", bytes.NewBuffer(payloadBytes))
				req.Header.Set("Content-Type", "application/json")

				w := httptest.NewRecorder()
				router.ServeHTTP(w, req)

				reqLatency := time.Since(reqStart)

				mutex.Lock()
				totalLatency += reqLatency
				if reqLatency > maxLatency {
					maxLatency = reqLatency
				}
				if reqLatency < minLatency {
					minLatency = reqLatency
				}

				if w.Code == http.StatusCreated {
					successCount++
				} else {
					errorCount++
				}
				mutex.Unlock()
			}
		}()
	}

	wg.Wait()
	totalTime := time.Since(startTime)

	// Calculate metrics
	avgLatency := totalLatency / time.Duration(totalRequests)
	throughput := float64(totalRequests) / totalTime.Seconds()

	// Assertions and reporting
	t.Logf("=== High Concurrency Test Results ===")
	t.Logf("Total requests: %d", totalRequests)
	t.Logf("Successful requests: %d", successCount)
	t.Logf("Failed requests: %d", errorCount)
	t.Logf("Total time: %v", totalTime)
	t.Logf("Throughput: %.2f requests/second", throughput)
	t.Logf("Average latency: %v", avgLatency)
	t.Logf("Min latency: %v", minLatency)
	t.Logf("Max latency: %v", maxLatency)

	assert.Equal(t, int32(totalRequests), successCount, "All requests should succeed")
	assert.Equal(t, int32(0), errorCount, "No requests should fail")
	assert.True(t, avgLatency < 100*time.Millisecond, "Average latency should be under 100ms, got %v", avgLatency)
}

// TestSustainedBookingLoad runs a sustained mixed read/write load against
// the booking endpoints
func TestSustainedBookingLoad(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping sustained load test in short mode")
	}

	gin.SetMode(gin.TestMode)
	mockService := new(mocks.BookingService)
	handler := api.NewBookingHandler(mockService)

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("tenant_id", "test-tenant-id")
		c.Next()
	})

	router.POST("/bookings", handler.CreateBooking)
	router.GET("/bookings", handler.ListBookings)

	mockService.On("Create", mock.Anything, "test-tenant-id", mock.AnythingOfType("dto.CreateBookingRequest")).Return(&dto.CreateBookingResponse{
		Booking: dto.BookingResponse{ID: "booking-1", Status: "pending"},
	}, nil)
	mockService.On("List", mock.Anything, mock.AnythingOfType("domain.BookingFilter")).Return([]dto.BookingResponse{}, nil)

	// Run sustained load for a few seconds
	duration := 5 * time.Second
	startTime := time.Now()
	requestCount := 0

	for time.Since(startTime) < duration {
		payload := dto.CreateBookingRequest{
			RoomID:    "room-1",
			GuestName: fmt.Sprintf("Guest %d", requestCount),
			CheckIn:   "2024-06-10",
			CheckOut:  "2024-06-13",
		}

		payloadBytes, _ := json.Marshal(payload)
		req, _ := http.NewRequest("POST", "/bookings", bytes.NewBuffer(payloadBytes))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if requestCount%100 == 0 {
			// Occasionally do a list request
			req, _ := http.NewRequest("GET", "/bookings?status=pending", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
		}

		requestCount++
	}

	totalTime := time.Since(startTime)
	throughput := float64(requestCount) / totalTime.Seconds()

	t.Logf("=== Sustained Load Test Results ===")
	t.Logf("Duration: %v", duration)
	t.Logf("Total requests: %d", requestCount)
	t.Logf("Average throughput: %.2f requests/second", throughput)

	assert.True(t, throughput >= 500, "Should maintain at least 500 requests/second under sustained load")
}
