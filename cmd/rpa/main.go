package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/diegothxnt/ventas-rpa/infrastructure/charts"
	"github.com/diegothxnt/ventas-rpa/infrastructure/integrator/whatsapp"
	"github.com/diegothxnt/ventas-rpa/infrastructure/spreadsheet"
	"github.com/diegothxnt/ventas-rpa/internal/config"
	"github.com/diegothxnt/ventas-rpa/internal/scheduler"
	"github.com/diegothxnt/ventas-rpa/internal/usecases/analyzing"
	"github.com/diegothxnt/ventas-rpa/internal/usecases/reporting"
)

var (
	flagArchivo    string
	flagGraficos   string
	flagSalidaJSON string
	flagEnviar     bool
	flagNumero     string
)

func main() {
	configureLogger()

	rootCmd := &cobra.Command{
		Use:   "ventas-rpa",
		Short: "RPA de análisis de ventas: agrega el Excel de ventas y entrega el reporte",
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Ejecuta una corrida completa del análisis y muestra el reporte",
		RunE:  runOnce,
	}
	runCmd.Flags().StringVar(&flagArchivo, "archivo", "", "ruta del archivo Excel (reemplaza la configurada)")
	runCmd.Flags().StringVar(&flagGraficos, "graficos", "", "carpeta de salida de los gráficos")
	runCmd.Flags().StringVar(&flagSalidaJSON, "salida-json", "", "exporta los agregados a un archivo JSON")
	runCmd.Flags().BoolVar(&flagEnviar, "enviar", false, "envía el reporte por WhatsApp")
	runCmd.Flags().StringVar(&flagNumero, "numero", "", "número de destino del WhatsApp (ej: +51987654321)")

	scheduleCmd := &cobra.Command{
		Use:   "programar",
		Short: "Mantiene el proceso corriendo y ejecuta el reporte según el cron configurado",
		RunE:  runScheduled,
	}

	rootCmd.AddCommand(runCmd, scheduleCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runOnce(cmd *cobra.Command, args []string) error {
	cfg, reportService, err := buildServices()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	result, err := reportService.Run(ctx, reporting.RunOptions{
		SendWhatsApp: flagEnviar,
		To:           flagNumero,
		JSONPath:     flagSalidaJSON,
	})
	if err != nil && result == nil {
		logrus.WithError(err).Error("El análisis no pudo completarse")
		return err
	}

	fmt.Println(result.ReportText)

	if len(result.ChartPaths) > 0 {
		fmt.Println("🖼️ ARCHIVOS GENERADOS:")
		for _, path := range result.ChartPaths {
			fmt.Printf("• %s/%s\n", cfg.Charts.OutputDir, path)
		}
	}

	if err != nil {
		// La agregación terminó bien; falló un paso de presentación o entrega
		logrus.WithError(err).Warn("Corrida completada con errores de entrega")
	}

	return nil
}

func runScheduled(cmd *cobra.Command, args []string) error {
	cfg, reportService, err := buildServices()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	syncService := scheduler.NewReportSyncService(reportService, cfg)
	if err := syncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Error al iniciar el agendador de reportes")
		return err
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logrus.Info("Señal recibida, terminando")
	return nil
}

// buildServices arma la cadena completa: lector de planillas, analizador,
// generador de gráficos, integrador de WhatsApp y servicio de reportes.
func buildServices() (*config.Config, *reporting.Service, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, nil, err
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nivel de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	if flagArchivo != "" {
		cfg.Workbook.Path = flagArchivo
	}
	if flagGraficos != "" {
		cfg.Charts.OutputDir = flagGraficos
	}

	reader := spreadsheet.NewReader()
	analyzer := analyzing.NewService(cfg, reader)
	renderer := charts.NewRenderer()

	var notifier reporting.Notifier
	whatsappService, err := whatsapp.NewService(cfg.Twilio)
	if err != nil {
		logrus.Warn("Credenciales de Twilio no encontradas; el envío por WhatsApp no funcionará")
	} else {
		notifier = whatsappService
	}

	return cfg, reporting.NewService(cfg, analyzer, renderer, notifier), nil
}

// configureLogger configura el formato de los logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
