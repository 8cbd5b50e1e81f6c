package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/officetrack/officeday-backend-go/internal/config"
	"github.com/officetrack/officeday-backend-go/internal/domain/statistics"
	caldavGateway "github.com/officetrack/officeday-backend-go/internal/gateway/caldav"
	appHTTP "github.com/officetrack/officeday-backend-go/internal/handler/http"
	"github.com/officetrack/officeday-backend-go/internal/pkg/database"
	"github.com/officetrack/officeday-backend-go/internal/pkg/jwt"
	"github.com/officetrack/officeday-backend-go/internal/repository/memory"
	"github.com/officetrack/officeday-backend-go/internal/repository/postgresql"
	calendarService "github.com/officetrack/officeday-backend-go/internal/service/calendar"
	statisticsService "github.com/officetrack/officeday-backend-go/internal/service/statistics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	var quarterConfigStore statistics.QuarterConfigStore
	if cfg.UsesDatabase() {
		db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
		if err != nil {
			fmt.Println("Error connecting to database:", err)
			return
		}
		quarterConfigStore = postgresql.NewQuarterConfigRepository(db)
	} else {
		log.Println("DB_HOST not set, keeping quarter configuration in memory")
		quarterConfigStore = memory.NewQuarterConfigStore()
	}

	gateway, err := caldavGateway.NewGateway(
		cfg.CalDAV.URL,
		cfg.CalDAV.Username,
		cfg.CalDAV.Password,
		cfg.CalDAV.PrimaryCalendar,
	)
	if err != nil {
		log.Fatal("Failed to initialize calendar gateway:", err)
	}

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	calendarSvc := calendarService.NewCalendarService(gateway)
	statisticsSvc := statisticsService.NewStatisticsService(quarterConfigStore)

	officeDayHandler := appHTTP.NewOfficeDayHandler(calendarSvc)
	statisticsHandler := appHTTP.NewStatisticsHandler(statisticsSvc, calendarSvc)

	router := appHTTP.NewRouter(JWTService, officeDayHandler, statisticsHandler)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
