package main

import (
	"github.com/skillswap/skillswap-backend/internal/server"
)

func main() {
	server.Init()
}
