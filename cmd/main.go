package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"resume-ats-go/internal/api/handler"
	"resume-ats-go/internal/api/router"
	"resume-ats-go/internal/config"
	appCoreLogger "resume-ats-go/internal/logger"
	"resume-ats-go/internal/outbox"
	"resume-ats-go/internal/parser"
	"resume-ats-go/internal/processor"
	"resume-ats-go/internal/storage"
	"resume-ats-go/internal/tracing"

	glog "github.com/cloudwego/hertz/pkg/common/hlog"
	hertzadapter "github.com/hertz-contrib/logger/zerolog"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
)

var (
	version     = "1.0.0"         //nolint:gochecknoglobals
	serviceName = "resume-ats-go" //nolint:gochecknoglobals
)

func main() {
	var configPath string
	pflag.StringVarP(&configPath, "config", "c", "internal/config/config.yaml", "Path to config file")
	pflag.Parse()

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		zlog.Fatal().Err(err).Msg("加载配置失败")
	}

	initLogger(&cfg.Logger)
	glog.Infof("配置加载成功, 版本: %s", version)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// OpenTelemetry追踪
	if cfg.Tracing.Enabled {
		svcName := cfg.Tracing.ServiceName
		if svcName == "" {
			svcName = serviceName
		}
		shutdownTracing, err := tracing.InitProvider(ctx, svcName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
		if err != nil {
			glog.Warnf("初始化追踪失败: %v", err)
		} else {
			defer func() {
				shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancelShutdown()
				if err := shutdownTracing(shutdownCtx); err != nil {
					glog.Warnf("关闭追踪提供者失败: %v", err)
				}
			}()
			glog.Info("OpenTelemetry追踪初始化成功")
		}
	}

	storageManager, err := storage.NewStorage(cfg)
	if err != nil {
		glog.Fatalf("初始化存储失败: %v", err)
	}
	defer storageManager.Close()
	glog.Info("存储服务初始化成功")

	// 发件箱消息中继
	var messageRelay *outbox.MessageRelay
	if cfg.Outbox.Enabled && storageManager.MySQL != nil && storageManager.RabbitMQ != nil {
		if err := storageManager.RabbitMQ.EnsureExchange(cfg.RabbitMQ.EventsExchange, "topic", true); err != nil {
			glog.Warnf("声明事件交换机失败: %v", err)
		}
		messageRelay = outbox.NewMessageRelay(storageManager.MySQL.DB(), storageManager.RabbitMQ, &cfg.Outbox)
		messageRelay.Start()
		glog.Info("消息中继服务已启动")
	}

	pdfExtractor, err := parser.NewEinoPDFTextExtractor(ctx,
		parser.WithExtractTimeout(config.GetDuration(cfg.Parser.ExtractTimeout, 30*time.Second)),
		parser.WithEinoLogger(appCoreLogger.Logger.With().Str("component", "pdf_extractor").Logger()),
	)
	if err != nil {
		glog.Fatalf("创建PDF提取器失败: %v", err)
	}
	glog.Info("PDF提取器初始化成功")

	pipeline := processor.NewPipeline(
		[]processor.ComponentOpt{
			processor.WithcompPdfextractor(pdfExtractor),
			processor.WithcompScorer(parser.NewScorer(cfg.Scoring.Strategy)),
		},
		[]processor.SettingOpt{
			processor.WithsetDebug(cfg.Logger.Level == "debug"),
			processor.WithsetProcesstimeout(config.GetDuration(cfg.Parser.ProcessTimeout, 60*time.Second)),
			processor.WithsetLogger(appCoreLogger.Logger.With().Str("component", "pipeline").Logger()),
		},
	)
	glog.Info("解析评分管线初始化成功")

	resumeHandler := handler.NewResumeHandler(cfg, storageManager, pipeline)

	h := router.NewServer(cfg)
	router.RegisterRoutes(h, resumeHandler)
	glog.Info("HTTP路由注册成功")

	go func() {
		glog.Infof("HTTP服务器启动中，监听地址: %s", cfg.Server.Address)
		if err := h.Run(); err != nil {
			glog.Fatalf("启动HTTP服务器失败: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	glog.Info("接收到终止信号，正在优雅退出...")

	if messageRelay != nil {
		messageRelay.Stop()
		glog.Info("消息中继服务已停止")
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err := h.Shutdown(shutdownCtx); err != nil {
		glog.Fatalf("服务器关闭失败: %v", err)
	}
	glog.Info("优雅退出完成")
}

// initLogger 初始化zerolog全局日志，并通过适配器接管Hertz日志
func initLogger(cfg *config.LoggerConfig) {
	appCoreLogger.Init(appCoreLogger.Config{
		Level:        cfg.Level,
		Format:       cfg.Format,
		TimeFormat:   cfg.TimeFormat,
		ReportCaller: cfg.ReportCaller,
	})

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	// 配置了日志文件时，同时写控制台和文件
	if cfg.LogFile != "" {
		fileWriter, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			zlog.Warn().Err(err).Str("path", cfg.LogFile).Msg("无法打开日志文件，仅输出到控制台")
		} else {
			var consoleWriter io.Writer = os.Stdout
			if cfg.Format == "pretty" {
				consoleWriter = zerolog.ConsoleWriter{
					Out:        os.Stderr,
					TimeFormat: cfg.TimeFormat,
				}
			}
			multiWriter := zerolog.MultiLevelWriter(consoleWriter, fileWriter)
			logger := zerolog.New(multiWriter).Level(level).With().Timestamp().Logger()
			if cfg.ReportCaller {
				logger = logger.With().Caller().Logger()
			}
			appCoreLogger.Logger = logger
			zlog.Logger = logger
		}
	}

	hertzCompatibleLogger := hertzadapter.From(appCoreLogger.Logger)
	glog.SetLogger(hertzCompatibleLogger)
	glog.SetLevel(hertzLevel(level))
}

func hertzLevel(level zerolog.Level) glog.Level {
	switch level {
	case zerolog.DebugLevel:
		return glog.LevelDebug
	case zerolog.WarnLevel:
		return glog.LevelWarn
	case zerolog.ErrorLevel:
		return glog.LevelError
	default:
		return glog.LevelInfo
	}
}
