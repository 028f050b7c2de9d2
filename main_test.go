package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lionel509/TwirlTasticWebMonster/pkg/simulation"
)

func TestRunReturnsStartupErrors(t *testing.T) {
	cfg := simulation.DefaultConfig()
	cfg.Log.LogLevel = "loud"

	assert.Error(t, run(cfg))
}
