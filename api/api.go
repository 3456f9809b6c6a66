package api

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rbeaulieu03/portfolio-simulator/internal/logger"
	"github.com/rbeaulieu03/portfolio-simulator/internal/report"
	"github.com/rbeaulieu03/portfolio-simulator/internal/repository"
	"github.com/rbeaulieu03/portfolio-simulator/internal/service"
	"github.com/rbeaulieu03/portfolio-simulator/internal/simulation"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ApiHandler struct {
	Db                          *sql.DB
	PriceService                service.PriceService
	SimulationRequestRepository repository.SimulationRequestRepository
}

func (m ApiHandler) InitializeRouterEngine() *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())
	router.Use(m.logRequestMiddleware)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to portfolio-simulator"})
	})
	router.POST("/simulate", m.simulate)
	router.POST("/compare", m.compare)
	router.POST("/updatePrices", m.updatePrices)

	return router
}

func (m ApiHandler) StartApi(port int) error {
	router := m.InitializeRouterEngine()
	return router.Run(fmt.Sprintf(":%d", port))
}

// validation failures are the caller's fault and come back as 400s,
// everything else is a 500
func returnErrorJson(err error, c *gin.Context) {
	code := 500

	var invalidRange simulation.InvalidRangeError
	var invalidAmount simulation.InvalidAmountError
	var outOfRange simulation.OutOfRangeError
	var insufficientData simulation.InsufficientDataError
	var mismatchedRange report.MismatchedRangeError
	if errors.As(err, &invalidRange) ||
		errors.As(err, &invalidAmount) ||
		errors.As(err, &outOfRange) ||
		errors.As(err, &insufficientData) ||
		errors.As(err, &mismatchedRange) {
		code = 400
	}

	logger.Error(err)
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

func (m ApiHandler) logRequestMiddleware(ctx *gin.Context) {
	requestID := uuid.New()
	start := time.Now().UTC()

	ctx.Next()

	logger.Info(
		"%s %s -> %d (%dms) requestId=%s",
		ctx.Request.Method,
		ctx.Request.URL.Path,
		ctx.Writer.Status(),
		time.Since(start).Milliseconds(),
		requestID,
	)
}
