package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/JoMaNi1998/MKBusinessSoftware-sub003/internal/infra"
	"github.com/JoMaNi1998/MKBusinessSoftware-sub003/internal/worker"
)

// Health returns a JSON health check response.
// Checks DB and Redis connectivity and reports the SMTP breaker state
// and DLQ depths; never exposes credentials or internals.
func Health(db *gorm.DB, rdb *redis.Client, smtpBreaker *infra.CircuitBreaker) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		dbStatus := "connected"
		sqlDB, err := db.DB()
		if err != nil || sqlDB.PingContext(ctx) != nil {
			dbStatus = "error"
		}

		redisStatus := "connected"
		if rdb.Ping(ctx).Err() != nil {
			redisStatus = "error"
		}

		exportDLQ, _ := worker.DLQLength(ctx, rdb, worker.QueueExport)
		emailDLQ, _ := worker.DLQLength(ctx, rdb, worker.QueueEmail)

		status := http.StatusOK
		if dbStatus != "connected" || redisStatus != "connected" {
			status = http.StatusServiceUnavailable
		}

		c.JSON(status, gin.H{
			"ok":         status == http.StatusOK,
			"db":         dbStatus,
			"redis":      redisStatus,
			"smtp":       smtpBreaker.State().String(),
			"export_dlq": exportDLQ,
			"email_dlq":  emailDLQ,
		})
	}
}
