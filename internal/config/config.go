package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Drivers de fonte de dados suportados
const (
	SourceStatic   = "static"
	SourceCSV      = "csv"
	SourcePostgres = "postgres"
	SourceSQLite   = "sqlite3"
)

// Modos de visualização
const (
	DisplayNone  = "none"
	DisplayServe = "serve"
)

type Config struct {
	App     App     `mapstructure:",squash"`
	Report  Report  `mapstructure:",squash"`
	Source  Source  `mapstructure:",squash"`
	Output  Output  `mapstructure:",squash"`
	Display Display `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Report struct {
	Year         int    `mapstructure:"report_year"`
	Title        string `mapstructure:"report_title"`
	AnalystEmail string `mapstructure:"analyst_email"`
}

type Source struct {
	Driver   string   `mapstructure:"source_driver"`
	Path     string   `mapstructure:"source_path"`
	Table    string   `mapstructure:"source_table"`
	Database Database `mapstructure:",squash"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Output struct {
	CSVPath     string  `mapstructure:"output_csv_path"`
	ChartPath   string  `mapstructure:"output_chart_path"`
	SummaryPath string  `mapstructure:"output_summary_path"`
	ChartDPI    float64 `mapstructure:"chart_dpi"`
	ChartWidth  int     `mapstructure:"chart_width"`  // Largura de cada painel, em pixels
	ChartHeight int     `mapstructure:"chart_height"` // Altura do gráfico, em pixels
}

type Display struct {
	Mode string `mapstructure:"display_mode"`
	Host string `mapstructure:"display_host"`
	Port string `mapstructure:"display_port"`
}

// Endereços usados quando DATABASE_URL não é informado
const (
	defaultPostgresURL = "localhost:5432/retention"
	defaultSQLiteURL   = "file:retention.db"
)

func SetDefaults(v *viper.Viper) {
	v.SetDefault("LOG_LEVEL", "info")

	v.SetDefault("REPORT_YEAR", 2024)
	v.SetDefault("REPORT_TITLE", "E-commerce Customer Retention Analysis")
	v.SetDefault("ANALYST_EMAIL", "")

	v.SetDefault("SOURCE_DRIVER", SourceStatic)
	v.SetDefault("SOURCE_PATH", "")
	v.SetDefault("SOURCE_TABLE", "quarterly_retention")

	v.SetDefault("DATABASE_URL", "") // Vazio usa o padrão do driver
	v.SetDefault("DATABASE_USER", "postgres")
	v.SetDefault("DATABASE_PASSWORD", "root")

	// Caminhos vazios são derivados do ano do relatório
	v.SetDefault("OUTPUT_CSV_PATH", "")
	v.SetDefault("OUTPUT_CHART_PATH", "")
	v.SetDefault("OUTPUT_SUMMARY_PATH", "") // Vazio desabilita o resumo JSON

	v.SetDefault("CHART_DPI", 300)
	v.SetDefault("CHART_WIDTH", 2250)
	v.SetDefault("CHART_HEIGHT", 1800)

	v.SetDefault("DISPLAY_MODE", DisplayNone)
	v.SetDefault("DISPLAY_HOST", "localhost")
	v.SetDefault("DISPLAY_PORT", "8000")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

	v := viper.New()
	SetDefaults(v)
	v.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	config := &Config{}
	err := v.Unmarshal(config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, errors.Wrap(err, "config: erro ao decodificar configuração")
	}

	config.normalize()

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// normalize preenche os valores derivados
func (c *Config) normalize() {
	c.App.LogLevel = strings.ToLower(strings.TrimSpace(c.App.LogLevel))
	c.Source.Driver = strings.ToLower(strings.TrimSpace(c.Source.Driver))
	c.Display.Mode = strings.ToLower(strings.TrimSpace(c.Display.Mode))

	if c.Output.CSVPath == "" {
		c.Output.CSVPath = fmt.Sprintf("customer_retention_%d.csv", c.Report.Year)
	}
	if c.Output.ChartPath == "" {
		c.Output.ChartPath = fmt.Sprintf("retention_analysis_%d.png", c.Report.Year)
	}

	switch c.Source.Driver {
	case SourcePostgres:
		if c.Source.Database.URL == "" {
			c.Source.Database.URL = defaultPostgresURL
		}
		c.Source.Database.DSN = fmt.Sprintf(
			"%s://%s:%s@%s",
			SourcePostgres,
			c.Source.Database.User,
			c.Source.Database.Password,
			c.Source.Database.URL,
		)
	case SourceSQLite:
		if c.Source.Database.URL == "" {
			c.Source.Database.URL = defaultSQLiteURL
		}
		c.Source.Database.DSN = c.Source.Database.URL
	}
}

// Validate verifica se a configuração é utilizável
func (c *Config) Validate() error {
	if c.Report.Year <= 0 {
		return errors.Errorf("config: ano do relatório inválido: %d", c.Report.Year)
	}

	drivers := []string{SourceStatic, SourceCSV, SourcePostgres, SourceSQLite}
	if !slices.Contains(drivers, c.Source.Driver) {
		return errors.Errorf("config: driver de fonte de dados inválido: %q", c.Source.Driver)
	}

	if c.Source.Driver == SourceCSV && c.Source.Path == "" {
		return errors.New("config: SOURCE_PATH é obrigatório para o driver csv")
	}

	if (c.Source.Driver == SourcePostgres || c.Source.Driver == SourceSQLite) && c.Source.Table == "" {
		return errors.New("config: SOURCE_TABLE é obrigatório para fontes SQL")
	}

	if c.Output.ChartDPI <= 0 || c.Output.ChartWidth <= 0 || c.Output.ChartHeight <= 0 {
		return errors.Errorf("config: dimensões do gráfico inválidas (dpi=%v, largura=%d, altura=%d)",
			c.Output.ChartDPI, c.Output.ChartWidth, c.Output.ChartHeight)
	}

	if c.Display.Mode != DisplayNone && c.Display.Mode != DisplayServe {
		return errors.Errorf("config: modo de visualização inválido: %q", c.Display.Mode)
	}

	return nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	// Obter diretório atual
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err != nil {
			continue
		}

		if err := godotenv.Load(location); err != nil {
			logrus.WithError(err).Warn("Erro ao carregar arquivo .env de: ", location)
			continue
		}

		logrus.Debug("Arquivo .env carregado com sucesso de: ", location)
		return
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando variáveis de ambiente e valores padrão")
}
