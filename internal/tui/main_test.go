package tui

import (
	"os"
	"testing"
	"time"
)

// Rendered comment dates follow time.Local; pin it so assertions do not
// depend on the machine running the tests.
func TestMain(m *testing.M) {
	time.Local = time.UTC
	os.Exit(m.Run())
}
