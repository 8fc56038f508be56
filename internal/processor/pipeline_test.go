package processor

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-ats-go/internal/types"
)

// staticExtractor 返回固定文本的PDF提取器，用于绕开真实解析
type staticExtractor struct {
	text string
	err  error
}

func (s *staticExtractor) ExtractTextFromReader(ctx context.Context, reader io.Reader, uri string) (string, error) {
	return s.text, s.err
}

func (s *staticExtractor) ExtractTextFromBytes(ctx context.Context, data []byte, uri string) (string, error) {
	return s.text, s.err
}

const sampleResumeText = "Arjun Kumar\n" +
	"arjun.kumar@example.com\n" +
	"+91-9876543210\n" +
	"Bangalore\n" +
	"\n" +
	"EDUCATION\n" +
	"B.Tech in Computer Science, ABC University, 2016 - 2020\n" +
	"\n" +
	"WORK EXPERIENCE\n" +
	"Software Engineer at TechCorp Inc Jan 2020 - Dec 2022\n" +
	"- Built data pipelines\n" +
	"\n" +
	"Skills:\n" +
	"Python, SQL and Docker\n" +
	"\n" +
	"Projects:\n" +
	"- Resume parser web app\n" +
	"\n" +
	"Certifications:\n" +
	"- AWS Certified Cloud Practitioner\n"

func newTestPipeline(compOpts ...ComponentOpt) *Pipeline {
	return NewPipeline(compOpts, []SettingOpt{WithsetLogger(zerolog.Nop())})
}

func TestPipelineParseText(t *testing.T) {
	p := newTestPipeline()

	result, err := p.ParseText(context.Background(), sampleResumeText, "arjun_kumar_resume.pdf")
	require.NoError(t, err)
	require.NotNil(t, result)
	require.NotNil(t, result.ParsedData)
	require.NotNil(t, result.ATSScore)

	assert.Equal(t, "arjun_kumar_resume.pdf", result.Filename)

	t.Run("联系方式", func(t *testing.T) {
		cd := result.ParsedData.ContactDetails
		assert.Equal(t, "Arjun Kumar", cd.Name)
		assert.Equal(t, "arjun.kumar@example.com", cd.Email)
		assert.Equal(t, "+91-9876543210", cd.Phone)
		assert.Equal(t, "Bangalore, Karnataka", cd.Location)
	})

	t.Run("各板块抽取结果", func(t *testing.T) {
		require.Len(t, result.ParsedData.Education, 1)
		assert.Contains(t, result.ParsedData.Education[0], "B.Tech")

		require.Len(t, result.ParsedData.Experience, 1)
		exp := result.ParsedData.Experience[0]
		assert.Equal(t, "Software Engineer", exp.Role)
		assert.Equal(t, "Jan 2020 - Dec 2022", exp.Duration)
		assert.Contains(t, exp.Description, "Built data pipelines")

		assert.Equal(t, []string{"docker", "python", "sql"}, result.ParsedData.Skills)
		assert.Equal(t, []string{"Resume parser web app"}, result.ParsedData.Projects)
		assert.Equal(t, []string{"AWS Certified Cloud Practitioner"}, result.ParsedData.Certifications)
	})

	t.Run("评分", func(t *testing.T) {
		score := result.ATSScore
		assert.Equal(t, 66, score.Score)
		assert.Equal(t, 100, score.MaxScore)
		assert.Equal(t, "66%", score.Percentage)
		assert.Equal(t, "Good", score.Rating)
		assert.Equal(t, 20, score.DetailedScores["contact"].Score)
		assert.Equal(t, 15, score.DetailedScores["education"].Score)
		assert.Equal(t, 23, score.DetailedScores["experience"].Score)
		assert.Equal(t, 8, score.DetailedScores["skills"].Score)
	})
}

func TestPipelineDeterministic(t *testing.T) {
	p := newTestPipeline()

	first, err := p.ParseText(context.Background(), sampleResumeText, "arjun_kumar_resume.pdf")
	require.NoError(t, err)
	second, err := p.ParseText(context.Background(), sampleResumeText, "arjun_kumar_resume.pdf")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestPipelineMissingFields(t *testing.T) {
	p := newTestPipeline()

	result, err := p.ParseText(context.Background(), "Just a single line of text.", "unknown.pdf")
	require.NoError(t, err)

	cd := result.ParsedData.ContactDetails
	assert.Equal(t, types.NotFound, cd.Email)
	assert.Equal(t, types.NotFound, cd.Phone)
	assert.Equal(t, types.NotFound, cd.Location)

	assert.NotNil(t, result.ParsedData.Education)
	assert.Empty(t, result.ParsedData.Education)
	assert.NotNil(t, result.ParsedData.Skills)
	assert.Empty(t, result.ParsedData.Skills)
}

func TestPipelineProcessPDF(t *testing.T) {
	t.Run("使用配置的提取器", func(t *testing.T) {
		p := newTestPipeline(WithcompPdfextractor(&staticExtractor{text: sampleResumeText}))

		result, err := p.ProcessPDF(context.Background(), []byte("%PDF-1.4"), "arjun_kumar_resume.pdf")
		require.NoError(t, err)
		assert.Equal(t, 66, result.ATSScore.Score)
	})

	t.Run("未配置提取器时报错", func(t *testing.T) {
		p := newTestPipeline()

		_, err := p.ProcessPDF(context.Background(), []byte("%PDF-1.4"), "resume.pdf")
		assert.Error(t, err)
	})

	t.Run("提取失败时包装错误", func(t *testing.T) {
		extractErr := errors.New("corrupt file")
		p := newTestPipeline(WithcompPdfextractor(&staticExtractor{err: extractErr}))

		_, err := p.ProcessPDF(context.Background(), []byte("%PDF-1.4"), "resume.pdf")
		require.Error(t, err)
		assert.ErrorIs(t, err, extractErr)
	})
}

func TestPipelineContextCancelled(t *testing.T) {
	p := newTestPipeline()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.ParseText(ctx, sampleResumeText, "resume.pdf")
	assert.ErrorIs(t, err, context.Canceled)
}
