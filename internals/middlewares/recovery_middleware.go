package middlewares

import (
	"log"
	"runtime/debug"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// RecoveryMiddleware mengubah panic handler jadi response 500,
// supaya satu request bermasalah tidak mematikan proses
func RecoveryMiddleware() fiber.Handler {
	return recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c *fiber.Ctx, e interface{}) {
			log.Printf("[SCHOOLKU][RECOVER] panic di %s %s: %v\n%s",
				c.Method(), c.Path(), e, debug.Stack())
		},
	})
}
