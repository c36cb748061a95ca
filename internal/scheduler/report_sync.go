package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/diegothxnt/ventas-rpa/internal/config"
	"github.com/diegothxnt/ventas-rpa/internal/usecases/reporting"
)

// ReportSyncConfig representa la configuración de la corrida programada del reporte
type ReportSyncConfig struct {
	CronSchedule string
	Enabled      bool
	SendWhatsApp bool
}

// ReportRunner es la operación que el agendador dispara en cada corrida.
type ReportRunner interface {
	Run(ctx context.Context, opts reporting.RunOptions) (*reporting.RunResult, error)
}

// ReportSyncService agenda y ejecuta la corrida periódica del reporte de
// ventas: la parte automatizada del RPA, sin intervención del usuario.
type ReportSyncService struct {
	scheduler           *gocron.Scheduler
	config              ReportSyncConfig
	appConfig           *config.Config
	reportService       ReportRunner
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewReportSyncService crea una nueva instancia del agendador de reportes
func NewReportSyncService(reportService ReportRunner, appConfig *config.Config) *ReportSyncService {
	syncConfig := ReportSyncConfig{
		CronSchedule: appConfig.ReportSync.CronSchedule,
		Enabled:      appConfig.ReportSync.Enabled,
		SendWhatsApp: appConfig.ReportSync.SendWhatsApp,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"enabled":       syncConfig.Enabled,
		"send_whatsapp": syncConfig.SendWhatsApp,
	}).Info("Configuración del agendador de reportes cargada")

	return &ReportSyncService{
		scheduler:     scheduler,
		config:        syncConfig,
		appConfig:     appConfig,
		reportService: reportService,
		syncRunning:   false,
	}
}

// Start inicia el agendador
func (s *ReportSyncService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Corrida programada del reporte deshabilitada por configuración")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de reportes de ventas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runScheduledReport(ctx)
	})
	if err != nil {
		return fmt.Errorf("error al agendar la corrida del reporte: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de reportes de ventas")
		s.scheduler.Stop()
	}()

	return nil
}

// IsRunning indica si hay una corrida en curso.
func (s *ReportSyncService) IsRunning() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	return s.syncRunning
}

// runScheduledReport ejecuta una corrida completa, ignorando el disparo si la
// anterior sigue en curso.
func (s *ReportSyncService) runScheduledReport(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Corrida del reporte ya en curso, ignorando el disparo")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando corrida programada del reporte de ventas")

	result, err := s.reportService.Run(ctx, reporting.RunOptions{
		SendWhatsApp: s.config.SendWhatsApp,
	})
	if err != nil && result == nil {
		logrus.WithError(err).Error("La corrida programada del reporte falló antes de la agregación")
		return
	}
	if err != nil {
		// El análisis terminó; falló un paso de presentación o entrega
		logrus.WithError(err).Warn("Corrida programada completada con errores de entrega")
	}

	s.lastSyncCompletedAt = time.Now()
	logrus.WithFields(logrus.Fields{
		"duracion":  time.Since(startTime).String(),
		"registros": result.Aggregates.Metrics.TotalSales,
	}).Info("Corrida programada del reporte completada")
}
