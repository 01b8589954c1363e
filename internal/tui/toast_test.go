package tui

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/colonyops/confusion/pkg/tuitest"
)

func TestToastController_Push(t *testing.T) {
	c := NewToastController()

	c.Push(Toast{Level: ToastInfo, Message: "hello"})

	assert.True(t, c.HasToasts())
	assert.Equal(t, []Toast{{Level: ToastInfo, Message: "hello"}}, c.Toasts())
	assert.Equal(t, defaultToastTTL, c.toasts[0].remaining)
}

func TestToastController_Push_evicts_oldest_at_max(t *testing.T) {
	c := NewToastController()

	for i := range defaultMaxToasts + 2 {
		c.Push(Toast{Message: fmt.Sprint(i)})
	}

	assert.Len(t, c.Toasts(), defaultMaxToasts)
	assert.Equal(t, "2", c.Toasts()[0].Message)
}

func TestToastController_Tick(t *testing.T) {
	c := NewToastController()
	c.Push(Toast{Message: "expires"})

	c.Tick(time.Second)
	assert.Equal(t, defaultToastTTL-time.Second, c.toasts[0].remaining)

	c.Push(Toast{Message: "survives"})
	c.Tick(defaultToastTTL - time.Second)

	assert.Equal(t, []Toast{{Message: "survives"}}, c.Toasts())
}

func TestToastController_Dismiss(t *testing.T) {
	c := NewToastController()
	c.Dismiss()
	assert.False(t, c.HasToasts())

	c.Push(Toast{Message: "a"})
	c.Push(Toast{Message: "b"})
	c.Dismiss()
	assert.Equal(t, []Toast{{Message: "a"}}, c.Toasts())
}

func TestToastView(t *testing.T) {
	c := NewToastController()
	v := NewToastView(c)

	assert.Empty(t, v.View())
	assert.Equal(t, "bg", v.Overlay("bg", 80, 24))

	c.Push(Toast{Level: ToastError, Message: "Your comment could not be posted"})
	out := tuitest.StripANSI(v.View())
	assert.Contains(t, out, "Your comment could not be posted")
}
