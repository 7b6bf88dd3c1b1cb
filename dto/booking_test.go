package dto

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bindPaymentStatus(t *testing.T, body string) error {
	t.Helper()
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("PATCH", "/bookings/1/payment-status", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	var input UpdatePaymentStatusInput
	return c.ShouldBindJSON(&input)
}

func TestUpdatePaymentStatusInputAcceptsAllStatuses(t *testing.T) {
	for _, status := range []string{"pending", "paid", "partially_paid", "refunded", "failed"} {
		t.Run(status, func(t *testing.T) {
			err := bindPaymentStatus(t, `{"paymentStatus":"`+status+`"}`)
			require.NoError(t, err)
		})
	}
}

func TestUpdatePaymentStatusInputRejectsUnknownStatus(t *testing.T) {
	err := bindPaymentStatus(t, `{"paymentStatus":"settled"}`)
	assert.Error(t, err)

	err = bindPaymentStatus(t, `{}`)
	assert.Error(t, err)
}
