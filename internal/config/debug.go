package config

import "os"

func IsDebug() bool {
	return os.Getenv("DEFTER_DEBUG") == "1" || os.Getenv("DEBUG") == "1"
}
