package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App        App        `mapstructure:",squash"`
	Workbook   Workbook   `mapstructure:",squash"`
	Analysis   Analysis   `mapstructure:",squash"`
	Charts     Charts     `mapstructure:",squash"`
	Twilio     Twilio     `mapstructure:",squash"`
	ReportSync ReportSync `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

// Workbook describe el archivo Excel de entrada y sus tres hojas.
type Workbook struct {
	Path            string `mapstructure:"workbook_path"`
	SalesSheet      string `mapstructure:"workbook_sales_sheet"`
	VehiclesSheet   string `mapstructure:"workbook_vehicles_sheet"`
	NewRecordsSheet string `mapstructure:"workbook_new_records_sheet"`
}

type Analysis struct {
	TopModels int `mapstructure:"analysis_top_models"`
}

type Charts struct {
	OutputDir string `mapstructure:"charts_output_dir"`
	BaseURL   string `mapstructure:"charts_base_url"`
}

// Twilio guarda las credenciales del canal de WhatsApp.
type Twilio struct {
	AccountSID     string `mapstructure:"twilio_account_sid"`
	AuthToken      string `mapstructure:"twilio_auth_token"`
	WhatsAppNumber string `mapstructure:"twilio_whatsapp_number"`
	DefaultTo      string `mapstructure:"twilio_default_to"`
}

// ReportSync configura la corrida programada del reporte.
type ReportSync struct {
	CronSchedule string `mapstructure:"report_sync_cron"`
	Enabled      bool   `mapstructure:"report_sync_enabled"`
	SendWhatsApp bool   `mapstructure:"report_sync_send_whatsapp"`
}

func SetDefaults() {
	viper.SetDefault("LOG_LEVEL", "info")

	viper.SetDefault("WORKBOOK_PATH", "Ventas Fundamentos.xlsx")
	viper.SetDefault("WORKBOOK_SALES_SHEET", "VENTAS")
	viper.SetDefault("WORKBOOK_VEHICLES_SHEET", "VEHICULOS")
	viper.SetDefault("WORKBOOK_NEW_RECORDS_SHEET", "NUEVOS REGISTROS")

	viper.SetDefault("ANALYSIS_TOP_MODELS", 5)

	viper.SetDefault("CHARTS_OUTPUT_DIR", "graficos")
	viper.SetDefault("CHARTS_BASE_URL", "")

	viper.SetDefault("TWILIO_ACCOUNT_SID", "")
	viper.SetDefault("TWILIO_AUTH_TOKEN", "")
	viper.SetDefault("TWILIO_WHATSAPP_NUMBER", "")
	viper.SetDefault("TWILIO_DEFAULT_TO", "")

	viper.SetDefault("REPORT_SYNC_CRON", "0 8 * * *") // Todos los días a las 8h
	viper.SetDefault("REPORT_SYNC_ENABLED", false)
	viper.SetDefault("REPORT_SYNC_SEND_WHATSAPP", false)
}

func NewConfig() (*Config, error) {
	// Primero cargar el archivo .env usando godotenv
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variables cargadas por godotenv (viper no pudo leer .env):", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	return config, nil
}

// loadEnvFile intenta cargar el archivo .env desde las ubicaciones conocidas
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("No se pudo obtener el directorio actual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Debug("Archivo .env cargado desde:", location)
			return
		}
	}
}
