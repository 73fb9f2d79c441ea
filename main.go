package main

import (
	"flag"
	"log"
	"strings"

	"buget/config"
	"buget/database"
	"buget/middleware"
	"buget/router"
)

// @title Buget API
// @version 1.0
// @description API pentru bugetul casnic: venituri, cheltuieli, economii, fonduri si conturi conectate
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

var (
	configFile  string
	port        string
	showVersion bool
)

func init() {
	flag.StringVar(&configFile, "config", "", "calea catre un fisier de configurare extern (optional)")
	flag.StringVar(&configFile, "c", "", "calea catre un fisier de configurare extern (forma scurta)")
	flag.StringVar(&port, "port", "", "portul de ascultare, ex: 8080 sau :8080")
	flag.StringVar(&port, "p", "", "portul de ascultare (forma scurta)")
	flag.BoolVar(&showVersion, "version", false, "afiseaza versiunea")
	flag.BoolVar(&showVersion, "v", false, "afiseaza versiunea (forma scurta)")
}

func main() {
	flag.Parse()

	if showVersion {
		log.Println("buget v1.0.0")
		return
	}

	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		log.Fatalf("incarcarea configuratiei a esuat: %v", err)
	}

	if port != "" {
		if !strings.HasPrefix(port, ":") {
			port = ":" + port
		}
		cfg.Server.Port = port
		log.Printf("port din linia de comanda: %s", port)
	}

	config.PrintConfig()

	if err := database.Init(cfg); err != nil {
		log.Fatalf("initializarea bazei de date a esuat: %v", err)
	}

	middleware.InitJWT(cfg)

	r := router.SetupRouter(cfg)

	log.Printf("==========================================")
	log.Printf("  aplicatia buget a pornit")
	log.Printf("==========================================")
	log.Printf("  API:      http://localhost%s/", cfg.Server.Port)
	log.Printf("  Swagger:  http://localhost%s/swagger/index.html", cfg.Server.Port)
	log.Printf("==========================================")

	if err := r.Run(cfg.Server.Port); err != nil {
		log.Fatalf("pornirea serverului a esuat: %v", err)
	}
}
