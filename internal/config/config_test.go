package config

import (
	"flag"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) SetupTest() {
	for _, key := range []string{
		"RUN_ADDRESS", "DATABASE_URI", "MIGRATIONS_DIR", "JWT_SECRET",
		"SMTP_HOST", "REDIS_ADDR", "KAFKA_BROKERS", "STAFF_USERNAME", "STAFF_PASSWORD",
	} {
		s.T().Setenv(key, "")
	}
}

func (s *ConfigTestSuite) flagSet() *flag.FlagSet {
	fset := flag.NewFlagSet("goldtrade", flag.ContinueOnError)
	fset.SetOutput(io.Discard)
	return fset
}

func (s *ConfigTestSuite) TestEnvOverridesFlags() {
	s.T().Setenv("DATABASE_URI", "postgres://env")
	s.T().Setenv("JWT_SECRET", "env-secret")

	conf, err := load(s.flagSet(), []string{"-d", "postgres://flag", "-a", "0.0.0.0:9000"})
	s.Require().NoError(err)

	s.Equal("postgres://env", conf.DatabaseDSN)
	s.Equal("env-secret", conf.JWTSecret)
	s.Equal("0.0.0.0:9000", conf.RunAddress)
	s.Equal("internal/db/migrations", conf.MigrationsDir)
}

func (s *ConfigTestSuite) TestDefaults() {
	s.T().Setenv("KAFKA_BROKERS", "kafka-1:9092,kafka-2:9092")
	s.T().Setenv("REDIS_ADDR", "localhost:6379")

	conf, err := load(s.flagSet(), []string{"-d", "postgres://flag", "-j", "secret"})
	s.Require().NoError(err)

	s.False(conf.SMTP.Enabled())
	s.Equal(587, conf.SMTP.Port)
	s.True(conf.Redis.Enabled())
	s.Equal(time.Minute, conf.Redis.RateCacheTTL)
	s.True(conf.Kafka.Enabled())
	s.Equal([]string{"kafka-1:9092", "kafka-2:9092"}, conf.Kafka.Brokers)
	s.Equal("goldtrade.notifications", conf.Kafka.NotifyTopic)
	s.Equal(uint(2), conf.Notify.Workers)
	s.Equal(10*time.Second, conf.ShutdownTimeout)
	s.False(conf.Staff.Enabled())
}

func (s *ConfigTestSuite) TestRequired() {
	cases := []struct {
		name    string
		args    []string
		env     map[string]string
		wantErr string
	}{
		{name: "no dsn", args: []string{"-j", "secret"}, wantErr: "database DSN is not set"},
		{name: "no secret", args: []string{"-d", "postgres://x"}, wantErr: "jwt secret is not set"},
		{
			name:    "staff without password",
			args:    []string{"-d", "postgres://x", "-j", "secret"},
			env:     map[string]string{"STAFF_USERNAME": "admin"},
			wantErr: "staff password is not set",
		},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			for k, v := range t.env {
				s.T().Setenv(k, v)
			}
			_, err := load(s.flagSet(), t.args)
			s.Require().EqualError(err, t.wantErr)
		})
	}
}
