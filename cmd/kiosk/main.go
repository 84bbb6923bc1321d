package main

import (
	"context"
	"fmt"
	"os"

	"cafe-kiosk/internal/kiosk"
	"cafe-kiosk/pkg/logger"
)

func main() {
	level := os.Getenv("KIOSK_LOG_LEVEL")
	mylog, err := logger.New("kiosk", level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer mylog.Sync()

	if err := kiosk.Execute(context.Background(), mylog, os.Args[1:]); err != nil {
		os.Exit(1)
	}
}
