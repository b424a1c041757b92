package serverconfig

import "time"

type Config struct {
	Log        LogConfig        `yaml:"log" mapstructure:"log"`
	Storage    StorageConfig    `yaml:"storage" mapstructure:"storage"`
	MongoDB    MongoDBConfig    `yaml:"mongodb" mapstructure:"mongodb"`
	MySQL      MySQLConfig      `yaml:"mysql" mapstructure:"mysql"`
	SQLite     SQLiteConfig     `yaml:"sqlite" mapstructure:"sqlite"`
	Editor     EditorConfig     `yaml:"editor" mapstructure:"editor"`
	HTTPServer HTTPServerConfig `yaml:"httpserver" mapstructure:"httpserver"`
}

// 存储驱动
const (
	DriverMemory  = "memory"
	DriverMongoDB = "mongodb"
	DriverMySQL   = "mysql"
	DriverSQLite  = "sqlite"
)

type StorageConfig struct {
	Driver     string        `yaml:"driver" mapstructure:"driver"`
	Setting    string        `yaml:"setting" mapstructure:"setting"`
	FlushEvery time.Duration `yaml:"flush_every" mapstructure:"flush_every"`
}

type MongoDBConfig struct {
	URI             string `yaml:"uri" mapstructure:"uri"`
	Database        string `yaml:"database" mapstructure:"database"`
	Collection      string `yaml:"collection" mapstructure:"collection"`
	ConnectTimeoutS int    `yaml:"connect_timeout_s" mapstructure:"connect_timeout_s"`
}

type MySQLConfig struct {
	Host     string `yaml:"host" mapstructure:"host"`
	Port     int    `yaml:"port" mapstructure:"port"`
	User     string `yaml:"user" mapstructure:"user"`
	Password string `yaml:"password" mapstructure:"password"`
	DBName   string `yaml:"dbname" mapstructure:"dbname"`
	Charset  string `yaml:"charset" mapstructure:"charset"`
	MaxIdle  int    `yaml:"max_idle" mapstructure:"max_idle"`
	MaxConn  int    `yaml:"max_conn" mapstructure:"max_conn"`
	// 慢查询阈值
	SlowThreshold time.Duration `yaml:"slow_threshold" mapstructure:"slow_threshold"`
}

type SQLiteConfig struct {
	Path string `yaml:"path" mapstructure:"path"`
}

type EditorConfig struct {
	AskTimeout time.Duration `yaml:"ask_timeout" mapstructure:"ask_timeout"`
}

type HTTPServerConfig struct {
	Host string `yaml:"host" mapstructure:"host"`
	Port int    `yaml:"port" mapstructure:"port"`
}

type LogConfig struct {
	FileDir    string `yaml:"file_dir" mapstructure:"file_dir"`
	MaxSize    int    `yaml:"max_size" mapstructure:"max_size"` // MB
	MaxBackups int    `yaml:"max_backups" mapstructure:"max_backups"`
	MaxAge     int    `yaml:"max_age" mapstructure:"max_age"` // days
	Compress   bool   `yaml:"compress" mapstructure:"compress"`
	Level      string `yaml:"level" mapstructure:"level"` // debug/info/warn/error...
	Dev        bool   `yaml:"dev" mapstructure:"dev"`
}
