package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-ats-go/internal/types"
)

func TestNameFromFilename(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     string
	}{
		{"下划线分隔", "john_doe_resume.pdf", "John Doe"},
		{"连字符加噪声词", "Priya-Sharma-Java-Developer-2024.pdf", "Priya Sharma"},
		{"大小写混合的噪声词", "ARJUN_KUMAR_CV_Final.pdf", "Arjun Kumar"},
		{"只剩噪声词", "resume.pdf", ""},
		{"空文件名", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NameFromFilename(tt.filename))
		})
	}
}

func TestContactExtractor(t *testing.T) {
	extractor := NewContactExtractor(NewGazetteer())

	t.Run("完整联系方式", func(t *testing.T) {
		text := "Arjun Kumar\nEmail: arjun.kumar@example.com\nPhone: +91-9876543210\nBangalore\n"
		cd := extractor.Extract(text, "arjun_kumar_resume.pdf")

		assert.Equal(t, "Arjun Kumar", cd.Name)
		assert.Equal(t, "arjun.kumar@example.com", cd.Email)
		assert.Equal(t, "+91-9876543210", cd.Phone)
		assert.Equal(t, "Bangalore, Karnataka", cd.Location)
	})

	t.Run("邮箱与个人主页黏连", func(t *testing.T) {
		text := "Contact: jane@example.comwww.janedoe.dev\n"
		cd := extractor.Extract(text, "")

		assert.Equal(t, "jane@example.com", cd.Email)
	})

	t.Run("缺失字段返回哨兵值", func(t *testing.T) {
		cd := extractor.Extract("I enjoy hiking and photography.\n", "")

		assert.Equal(t, types.NotFound, cd.Name)
		assert.Equal(t, types.NotFound, cd.Email)
		assert.Equal(t, types.NotFound, cd.Phone)
		assert.Equal(t, types.NotFound, cd.Location)
	})

	t.Run("逐行扫描取第一个命中的城市", func(t *testing.T) {
		text := "Objective\nBased in Hyderabad\nPreviously Mumbai\n"
		cd := extractor.Extract(text, "")

		assert.Equal(t, "Hyderabad, Telangana", cd.Location)
	})

	t.Run("十位数字电话", func(t *testing.T) {
		cd := extractor.Extract("Phone: 9876543210\n", "")
		assert.Equal(t, "9876543210", cd.Phone)
	})
}

func TestPhoneMatcherFallback(t *testing.T) {
	matcher := NewPhoneMatcher()

	t.Run("空格分组的国际号码", func(t *testing.T) {
		phone, ok := matcher.FirstValid("Call +91 98765 43210 anytime")
		require.True(t, ok)
		assert.Equal(t, "+91 98765 43210", phone)
	})

	t.Run("无效号码被拒绝", func(t *testing.T) {
		_, ok := matcher.FirstValid("ref +12 34567 89")
		assert.False(t, ok)
	})
}

func TestInsertSpaceBeforeWWW(t *testing.T) {
	assert.Equal(t, "a@b.com www.site.com", insertSpaceBeforeWWW("a@b.comwww.site.com"))
	// 已有空格时不变
	assert.Equal(t, "a@b.com www.site.com", insertSpaceBeforeWWW("a@b.com www.site.com"))
	assert.Equal(t, "www.site.com", insertSpaceBeforeWWW("www.site.com"))
}
