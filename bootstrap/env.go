package bootstrap

import (
	"fmt"

	"github.com/spf13/viper"
)

// Env 全部运行配置，来自.env文件与环境变量
type Env struct {
	AppEnv                string `mapstructure:"APP_ENV"`
	ServerAddress         string `mapstructure:"SERVER_ADDRESS"`
	ContextTimeoutSec     int    `mapstructure:"CONTEXT_TIMEOUT"`
	DBHost                string `mapstructure:"DB_HOST"`
	DBPort                string `mapstructure:"DB_PORT"`
	DBUser                string `mapstructure:"DB_USER"`
	DBPass                string `mapstructure:"DB_PASS"`
	DBName                string `mapstructure:"DB_NAME"`
	AccessTokenSecret     string `mapstructure:"ACCESS_TOKEN_SECRET"`
	AccessTokenExpiryHour int    `mapstructure:"ACCESS_TOKEN_EXPIRY_HOUR"`
	ClickStoreURL         string `mapstructure:"CLICK_STORE_URL"`
	ClickStoreTimeoutSec  int    `mapstructure:"CLICK_STORE_TIMEOUT"`
}

func NewEnv() *Env {
	env := Env{}
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		fmt.Printf("未找到.env配置文件，回退到环境变量: %v\n", err)
	}

	if err := viper.Unmarshal(&env); err != nil {
		panic(fmt.Sprintf("配置解析失败: %v", err))
	}

	if env.ContextTimeoutSec <= 0 {
		env.ContextTimeoutSec = 10
	}
	if env.ClickStoreTimeoutSec <= 0 {
		env.ClickStoreTimeoutSec = 3
	}
	if env.AccessTokenExpiryHour <= 0 {
		env.AccessTokenExpiryHour = 48
	}

	if env.AppEnv == "development" {
		fmt.Println("应用以开发模式运行")
	}
	return &env
}
