package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStaticBillingConfigHolder(t *testing.T) {
	holder := NewStaticBillingConfigHolder(BillingConfig{ChargeAmount: 75000})
	assert.EqualValues(t, 75000, holder.Get().ChargeAmount)
}

func TestDefaultBillingConfig(t *testing.T) {
	assert.EqualValues(t, DefaultChargeAmount, DefaultBillingConfig().ChargeAmount)
}

func TestValidateBillingConfig(t *testing.T) {
	assert.NoError(t, validateBillingConfig(BillingConfig{ChargeAmount: 1}))
	assert.Error(t, validateBillingConfig(BillingConfig{ChargeAmount: 0}))
	assert.Error(t, validateBillingConfig(BillingConfig{ChargeAmount: -5}))
}
