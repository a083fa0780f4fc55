package server

import (
	"context"
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"gopkg.in/urfave/cli.v1"

	"github.com/andrewyi/helpimages/src/collector"
	"github.com/andrewyi/helpimages/src/config"
	"github.com/andrewyi/helpimages/src/controller"
	"github.com/andrewyi/helpimages/src/core"
	"github.com/andrewyi/helpimages/src/dbstorage"
	"github.com/andrewyi/helpimages/src/downloader"
	"github.com/andrewyi/helpimages/src/entity"
	"github.com/andrewyi/helpimages/src/filestorage"
	"github.com/andrewyi/helpimages/src/util"
)

type Server struct {
	logger *log.Logger
	config *config.Config
	output io.Writer

	dbStorage *dbstorage.SimpleDBStorage
}

func NewServer() *Server {
	return &Server{
		output: os.Stdout,
	}
}

func (s *Server) initLog() {
	var logger = log.New()
	logger.SetFormatter(&log.TextFormatter{
		DisableColors: true,
		FullTimestamp: true,
	})
	logger.SetOutput(s.output)

	if s.config.Log.Context {
		logger.SetReportCaller(true)
	}

	if logLevel, err := log.ParseLevel(s.config.Log.Level); err != nil {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(logLevel)
	}
	s.logger = logger
}

func (s *Server) Start(ctx *cli.Context) error {
	configPath := ctx.String("config")
	var cfg = &config.Config{}
	if err := util.ReadConfig(configPath, config.Defaults(), cfg); err != nil {
		return fmt.Errorf("fail to load config, err: %w", err)
	}

	_, err := s.Run(context.Background(), cfg)
	return err
}

// Run 执行一次完整的扫描与下载，下载失败不会作为错误返回
func (s *Server) Run(ctx context.Context, cfg *config.Config) (entity.Summary, error) {
	s.config = cfg
	s.initLog()
	defer s.Stop()

	file := filestorage.NewSimpleFileStorage(cfg.Storage.Location)
	if err := file.Prepare(); err != nil {
		return entity.Summary{}, fmt.Errorf("fail to create output dir %s, err: %w", cfg.Storage.Location, err)
	}

	col, err := collector.NewSimpleCollector(s.logger, cfg.Collector.BaseURL, cfg.Collector.BodyImages)
	if err != nil {
		return entity.Summary{}, err
	}

	// 下载记录是可选的，数据库不可用时仅记录日志并继续下载
	var recorder controller.Recorder
	if cfg.Database.URL != "" {
		dbStorage, err := dbstorage.NewSimpleDBStorage(cfg.Database.URL)
		if err != nil {
			s.logger.WithError(err).Error("fail to create dbstorage handler, records disabled")
		} else {
			s.dbStorage = dbStorage
			recorder = dbStorage
		}
	}

	s.logger.WithField("dir", cfg.Collector.SourceDir).Info("reading help records")
	urls, err := col.Collect(cfg.Collector.SourceDir)
	if err != nil {
		return entity.Summary{}, fmt.Errorf("fail to list help records, err: %w", err)
	}
	s.logger.WithField("count", len(urls)).Info("unique image urls found")

	d := downloader.NewSimpleDownloader(s.logger, cfg.Downloader.Timeout, cfg.Downloader.UserAgent)
	c := controller.NewSimpleController(s.logger, file, d, recorder)

	summary := core.DownloadImages(ctx, s.logger, urls, c)
	core.ReportSummary(s.logger, summary)
	return summary, nil
}

func (s *Server) Stop() {
	if s.dbStorage != nil {
		if err := s.dbStorage.Close(); err != nil {
			s.logger.WithError(err).Warn("fail to close dbstorage")
		}
		s.dbStorage = nil
	}
}
