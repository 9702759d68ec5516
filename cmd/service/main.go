// File: cmd/service/main.go
// @title        Nsleadprovider API
// @version      1.0
// @description  Nsleadprovider 服務下單與審核的後端 API 文件
// @host         localhost:3001
// @BasePath     /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		exitFunc(1)
	}
}
