package shutdown

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	order *[]string
	name  string
	err   error
}

func (r recorder) Close() error {
	*r.order = append(*r.order, r.name)
	return r.err
}

func (r recorder) Off() {
	*r.order = append(*r.order, r.name)
}

func TestShutdown_Order(t *testing.T) {
	var order []string
	dog := recorder{order: &order, name: "watchdog"}
	led := recorder{order: &order, name: "led"}
	panel := recorder{order: &order, name: "display", err: errors.New("i2c gone")}
	store := recorder{order: &order, name: "store"}

	Shutdown(dog, led, panel, nil, store)

	assert.Equal(t, []string{"led", "display", "store", "watchdog"}, order)
}

func TestShutdown_NilArguments(t *testing.T) {
	assert.NotPanics(t, func() { Shutdown(nil, nil) })
}

func TestShutdownWithError(t *testing.T) {
	var order []string
	ShutdownWithError(errors.New("boom"), "fatal", recorder{order: &order, name: "watchdog"}, nil)
	assert.Equal(t, []string{"watchdog"}, order)
}
