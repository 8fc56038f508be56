package processor

import (
	"time"

	"github.com/rs/zerolog"

	"resume-ats-go/internal/parser"
)

// ComponentOpt 组件选项类型，仅改变 Components 结构体内的字段
type ComponentOpt func(*Components)

// SettingOpt 设置选项类型，仅改变 Settings 结构体内的字段
type SettingOpt func(*Settings)

// ----- 组件选项 -----

// WithcompPdfextractor 设置PDF提取器组件
func WithcompPdfextractor(extractor PDFExtractor) ComponentOpt {
	return func(c *Components) {
		c.PDFExtractor = extractor
	}
}

// WithcompContactextractor 设置联系方式抽取器组件
func WithcompContactextractor(e *parser.ContactExtractor) ComponentOpt {
	return func(c *Components) {
		c.Contact = e
	}
}

// WithcompEducationextractor 设置教育经历抽取器组件
func WithcompEducationextractor(e *parser.EducationExtractor) ComponentOpt {
	return func(c *Components) {
		c.Education = e
	}
}

// WithcompExperienceextractor 设置工作经历抽取器组件
func WithcompExperienceextractor(e *parser.ExperienceExtractor) ComponentOpt {
	return func(c *Components) {
		c.Experience = e
	}
}

// WithcompSkillsextractor 设置技能抽取器组件
func WithcompSkillsextractor(e *parser.SkillsExtractor) ComponentOpt {
	return func(c *Components) {
		c.Skills = e
	}
}

// WithcompProjectsextractor 设置项目抽取器组件
func WithcompProjectsextractor(e *parser.ProjectsExtractor) ComponentOpt {
	return func(c *Components) {
		c.Projects = e
	}
}

// WithcompCertificationsextractor 设置证书抽取器组件
func WithcompCertificationsextractor(e *parser.CertificationsExtractor) ComponentOpt {
	return func(c *Components) {
		c.Certifications = e
	}
}

// WithcompScorer 设置评分策略组件
func WithcompScorer(s parser.Scorer) ComponentOpt {
	return func(c *Components) {
		c.Scorer = s
	}
}

// ----- 设置选项 -----

// WithsetDebug 设置调试模式
func WithsetDebug(debug bool) SettingOpt {
	return func(s *Settings) {
		s.Debug = debug
	}
}

// WithsetLogger 设置日志记录器
func WithsetLogger(log zerolog.Logger) SettingOpt {
	return func(s *Settings) {
		s.Logger = log
	}
}

// WithsetProcesstimeout 设置单份简历的处理超时
func WithsetProcesstimeout(d time.Duration) SettingOpt {
	return func(s *Settings) {
		if d > 0 {
			s.ProcessTimeout = d
		}
	}
}
