package processor

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"resume-ats-go/internal/constants"
	"resume-ats-go/internal/logger"
	"resume-ats-go/internal/parser"
	"resume-ats-go/internal/tracing"
	"resume-ats-go/internal/types"
)

// Components 管线依赖的全部组件
type Components struct {
	PDFExtractor   PDFExtractor
	Contact        *parser.ContactExtractor
	Education      *parser.EducationExtractor
	Experience     *parser.ExperienceExtractor
	Skills         *parser.SkillsExtractor
	Projects       *parser.ProjectsExtractor
	Certifications *parser.CertificationsExtractor
	Scorer         parser.Scorer
}

// Settings 管线运行参数
type Settings struct {
	Debug          bool
	ProcessTimeout time.Duration
	Logger         zerolog.Logger
}

// Pipeline 简历解析评分管线
// 所有抽取器共享进程内只读的规则表，管线本身无状态，可并发使用
type Pipeline struct {
	Components Components
	Settings   Settings
}

// NewPipeline 构造管线，未指定的组件使用默认实现
func NewPipeline(compOpts []ComponentOpt, setOpts []SettingOpt) *Pipeline {
	segmenter := parser.NewSegmenter()
	gazetteer := parser.NewGazetteer()

	components := Components{
		Contact:        parser.NewContactExtractor(gazetteer),
		Education:      parser.NewEducationExtractor(),
		Experience:     parser.NewExperienceExtractor(),
		Skills:         parser.NewSkillsExtractor(segmenter),
		Projects:       parser.NewProjectsExtractor(),
		Certifications: parser.NewCertificationsExtractor(segmenter),
		Scorer:         parser.NewScorer(constants.ScoringStrategyWeighted),
	}
	for _, opt := range compOpts {
		opt(&components)
	}

	settings := Settings{
		ProcessTimeout: constants.DefaultProcessTimeout,
		Logger:         logger.Logger.With().Str("component", "pipeline").Logger(),
	}
	for _, opt := range setOpts {
		opt(&settings)
	}

	return &Pipeline{
		Components: components,
		Settings:   settings,
	}
}

// ParseText 解析纯文本简历并评分
// 对结构合法的文本总是成功返回，缺失的字段用哨兵值表示
func (p *Pipeline) ParseText(ctx context.Context, text, filename string) (*types.ResumeResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	text = parser.NormalizeText(text)

	if p.Settings.Debug {
		p.Settings.Logger.Debug().
			Str("filename", filename).
			Str("text_preview", tracing.SafeResumeContent(text)).
			Msg("开始解析简历文本")
	}

	parsed := &types.ParsedResume{
		ContactDetails: p.Components.Contact.Extract(text, filename),
		Education:      p.Components.Education.Extract(text),
		Experience:     p.Components.Experience.Extract(text),
		Skills:         p.Components.Skills.Extract(text),
		Projects:       p.Components.Projects.Extract(text),
		Certifications: p.Components.Certifications.Extract(text),
	}

	score := p.Components.Scorer.Score(parsed)

	p.Settings.Logger.Info().
		Str("filename", filename).
		Int("score", score.Score).
		Str("rating", score.Rating).
		Int("skills", len(parsed.Skills)).
		Dur("duration", time.Since(start)).
		Msg("简历解析评分完成")

	return &types.ResumeResult{
		Filename:   filename,
		ParsedData: parsed,
		ATSScore:   score,
	}, nil
}

// ProcessPDF 从PDF字节流提取文本后解析评分
func (p *Pipeline) ProcessPDF(ctx context.Context, data []byte, filename string) (*types.ResumeResult, error) {
	if p.Components.PDFExtractor == nil {
		return nil, fmt.Errorf("pipeline has no PDF extractor configured")
	}

	ctx, cancel := context.WithTimeout(ctx, p.Settings.ProcessTimeout)
	defer cancel()

	text, err := p.Components.PDFExtractor.ExtractTextFromBytes(ctx, data, filename)
	if err != nil {
		return nil, fmt.Errorf("提取PDF文本失败 %s: %w", filename, err)
	}

	return p.ParseText(ctx, text, filename)
}
