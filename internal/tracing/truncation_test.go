package tracing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncateString(t *testing.T) {
	t.Run("短字符串原样返回", func(t *testing.T) {
		assert.Equal(t, "short", TruncateString("short", 10))
	})

	t.Run("超长字符串保留首尾", func(t *testing.T) {
		long := "abcdefghijklmnopqrstuvwxyz"
		got := TruncateString(long, 11)
		assert.Contains(t, got, "...")
		assert.LessOrEqual(t, len([]rune(got)), 11)
		assert.Equal(t, "abcd", got[:4])
	})

	t.Run("极小上限直接截断", func(t *testing.T) {
		assert.Equal(t, "abc", TruncateString("abcdef", 3))
	})
}

func TestMaskPII(t *testing.T) {
	assert.Equal(t, "", MaskPII(""))
	assert.Equal(t, "*", MaskPII("a"))
	assert.Equal(t, "张*", MaskPII("张三"))
	assert.Equal(t, "王*明", MaskPII("王小明"))
	assert.Equal(t, "13*******78", MaskPII("13812345678"))
}

func TestSafeAttributeValue(t *testing.T) {
	t.Run("敏感字段被掩码", func(t *testing.T) {
		got := SafeAttributeValue("user_email", "myemail@example.com", 200)
		assert.NotContains(t, got, "myemail@example.com")
		assert.Contains(t, got, "*")
	})

	t.Run("普通字段只做截断", func(t *testing.T) {
		assert.Equal(t, "hello", SafeAttributeValue("filename", "hello", 200))
	})
}
