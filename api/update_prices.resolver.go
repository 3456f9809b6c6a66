package api

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
)

type updatePricesRequest struct {
	Tickers []string `json:"tickers"`
}

func (m ApiHandler) updatePrices(c *gin.Context) {
	var requestBody updatePricesRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJson(err, c)
		return
	}
	if len(requestBody.Tickers) == 0 {
		returnErrorJson(fmt.Errorf("no tickers given"), c)
		return
	}

	err := m.PriceService.UpdatePricesIfNeeded(context.Background(), requestBody.Tickers)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	out := map[string]string{
		"message": "ok",
	}

	c.JSON(200, out)
}
