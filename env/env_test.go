package env

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGet(t *testing.T) {
	t.Run("should report unset variables as absent", func(t *testing.T) {
		_, ok := GetIntIfExists("PAIRHEAP_TEST_UNSET")
		assert.False(t, ok)
	})

	t.Run("should read integers from the environment", func(t *testing.T) {
		t.Setenv("PAIRHEAP_TEST_CAPACITY", "25")

		got, ok := GetIntIfExists("PAIRHEAP_TEST_CAPACITY")
		assert.True(t, ok)
		assert.Equal(t, 25, got)
		assert.Equal(t, 25, GetInt("PAIRHEAP_TEST_CAPACITY"))
	})

	t.Run("should read strings from the environment", func(t *testing.T) {
		t.Setenv("PAIRHEAP_TEST_NAME", "scheduler")
		assert.Equal(t, "scheduler", GetString("PAIRHEAP_TEST_NAME"))

		got, ok := GetIfExists[string]("PAIRHEAP_TEST_NAME")
		assert.True(t, ok)
		assert.Equal(t, "scheduler", got)

		_, ok = GetIfExists[string]("PAIRHEAP_TEST_UNSET")
		assert.False(t, ok)
	})

	t.Run("should coerce unparseable integers to zero", func(t *testing.T) {
		t.Setenv("PAIRHEAP_TEST_CAPACITY", "not-a-number")
		assert.Equal(t, 0, GetInt("PAIRHEAP_TEST_CAPACITY"))
	})

	t.Run("should dedupe registered validation tags", func(t *testing.T) {
		RegisterValidation("PAIRHEAP_TEST_TAGS", "omitempty,numeric")
		RegisterValidation("PAIRHEAP_TEST_TAGS", "omitempty,numeric")

		validatorsMu.Lock()
		defer validatorsMu.Unlock()
		assert.Equal(t, []string{"omitempty,numeric"}, validators["PAIRHEAP_TEST_TAGS"])
	})
}
