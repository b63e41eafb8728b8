package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"go-sales-console/internal/model"
)

// dateRangeFromQuery reads the date bucket selection from the query
// string. The custom date only applies to the custom bucket; any other
// bucket clears it.
func dateRangeFromQuery(c *fiber.Ctx) model.DateRange {
	rng := model.DateRange{}.WithBucket(model.ParseBucket(c.Query("range", "all")))
	if rng.Bucket == model.BucketCustom {
		if d, err := time.ParseInLocation("2006-01-02", c.Query("date"), time.Local); err == nil {
			rng.CustomDate = &d
		}
	}
	return rng
}
