package gpio

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestDefaultConfig(t *testing.T) {
	c := qt.New(t)
	cfg := DefaultConfig()
	c.Assert(cfg.Chip, qt.Equals, "gpiochip0")
	c.Assert(cfg.ActiveLow, qt.IsFalse)
}

func TestOpenNilConfig(t *testing.T) {
	c := qt.New(t)
	d, err := Open(nil)
	c.Assert(err, qt.IsNotNil)
	c.Assert(d, qt.IsNil)
}
