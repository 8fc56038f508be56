package router

import (
	"context"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"resume-ats-go/internal/api/handler"
	"resume-ats-go/internal/config"
	"resume-ats-go/internal/constants"
	"resume-ats-go/internal/types"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/hertz-contrib/keyauth"
	hertztracing "github.com/hertz-contrib/obs-opentelemetry/tracing"
)

// NewServer 创建Hertz服务器，挂载追踪和鉴权中间件
func NewServer(cfg *config.Config) *server.Hertz {
	tracer, tracerCfg := hertztracing.NewServerTracer()
	h := server.New(
		tracer,
		server.WithHostPorts(cfg.Server.Address),
		server.WithHandleMethodNotAllowed(true),
		server.WithMaxRequestBodySize(constants.MaxUploadSizeBytes*4),
	)
	h.Use(hertztracing.ServerMiddleware(tracerCfg))

	// 配置了API Key时启用鉴权，健康检查不受限
	if len(cfg.Server.APIKeys) > 0 {
		allowed := make(map[string]struct{}, len(cfg.Server.APIKeys))
		for _, k := range cfg.Server.APIKeys {
			allowed[k] = struct{}{}
		}
		h.Use(keyauth.New(
			keyauth.WithKeyLookUp("header:Authorization", "Bearer"),
			keyauth.WithFilter(func(c context.Context, ctx *app.RequestContext) bool {
				return string(ctx.Path()) == "/api/v1/health"
			}),
			keyauth.WithValidator(func(c context.Context, ctx *app.RequestContext, key string) (bool, error) {
				_, ok := allowed[key]
				return ok, nil
			}),
		))
	}

	return h
}

// RegisterRoutes 注册API路由
func RegisterRoutes(h *server.Hertz, resumeHandler *handler.ResumeHandler) {
	api := h.Group("/api/v1")

	api.POST("/resume/upload", uploadHandlerFunc(resumeHandler))
	api.POST("/resume/analyze", analyzeHandlerFunc(resumeHandler))
	api.GET("/health", func(c context.Context, ctx *app.RequestContext) {
		ctx.JSON(consts.StatusOK, utils.H{"status": "ok"})
	})

	// 兼容旧版客户端直接POST到根路径
	h.POST("/", uploadHandlerFunc(resumeHandler))
}

// uploadHandlerFunc 处理multipart简历上传，支持一次上传多份文件
func uploadHandlerFunc(resumeHandler *handler.ResumeHandler) app.HandlerFunc {
	return func(c context.Context, ctx *app.RequestContext) {
		form, err := ctx.MultipartForm()
		if err != nil {
			ctx.JSON(consts.StatusBadRequest, utils.H{"error": "请求不是有效的multipart表单"})
			return
		}

		files := form.File[constants.FormFieldFile]
		if len(files) == 0 {
			ctx.JSON(consts.StatusBadRequest, utils.H{"error": "未找到简历文件，请使用字段 'file' 上传"})
			return
		}

		// 先校验全部文件类型，再开始处理
		for _, fh := range files {
			if !strings.EqualFold(filepath.Ext(fh.Filename), constants.AllowedFileExt) {
				ctx.JSON(consts.StatusBadRequest, utils.H{"error": "仅支持PDF文件: " + fh.Filename})
				return
			}
		}

		results := make([]*types.ResumeResult, 0, len(files))
		for _, fh := range files {
			fileBytes, err := readMultipartFile(fh)
			if err != nil {
				ctx.JSON(consts.StatusInternalServerError, utils.H{"error": "读取上传文件失败: " + fh.Filename})
				return
			}

			result, err := resumeHandler.ProcessUploadedFile(c, fileBytes, fh.Filename)
			if err != nil {
				ctx.JSON(consts.StatusInternalServerError, utils.H{"error": err.Error()})
				return
			}
			results = append(results, result)
		}

		ctx.JSON(consts.StatusOK, results)
	}
}

// analyzeRequest 纯文本分析请求体
type analyzeRequest struct {
	Text     string `json:"text"`
	Filename string `json:"filename"`
}

// analyzeHandlerFunc 对提交的纯文本做解析评分，不产生任何持久化副作用
func analyzeHandlerFunc(resumeHandler *handler.ResumeHandler) app.HandlerFunc {
	return func(c context.Context, ctx *app.RequestContext) {
		var req analyzeRequest
		if err := ctx.BindJSON(&req); err != nil {
			ctx.JSON(consts.StatusBadRequest, utils.H{"error": "请求体不是有效的JSON"})
			return
		}
		if strings.TrimSpace(req.Text) == "" {
			ctx.JSON(consts.StatusBadRequest, utils.H{"error": "text字段不能为空"})
			return
		}

		filename := req.Filename
		if filename == "" {
			filename = "resume.txt"
		}

		result, err := resumeHandler.AnalyzeText(c, req.Text, filename)
		if err != nil {
			ctx.JSON(consts.StatusInternalServerError, utils.H{"error": err.Error()})
			return
		}
		ctx.JSON(consts.StatusOK, result)
	}
}

func readMultipartFile(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
