package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	"github.com/shipsync/shipsync-api/config"
	"github.com/shipsync/shipsync-api/database"
	"github.com/shipsync/shipsync-api/handlers"
	"github.com/shipsync/shipsync-api/middleware"
	"github.com/shipsync/shipsync-api/models"
	"github.com/shipsync/shipsync-api/utils"
)

func init() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, relying on environment")
	}
}

func main() {
	utils.InitLogger()
	defer utils.Logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.Connect(cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	fmt.Println("DbName:", db.Name())

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := database.EnsureIndexes(ctx); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}
	cancel()

	handlers.Stores = database.NewStores(db, database.Client)

	r := mux.NewRouter()

	r.Use(middleware.Cors())
	r.Use(middleware.RequestID())

	// auth
	r.HandleFunc("/register", handlers.RegisterUser).Methods("POST", "OPTIONS")
	r.HandleFunc("/login", handlers.LoginUser).Methods("POST", "OPTIONS")
	r.HandleFunc("/profile", middleware.CheckAuth(handlers.Profile)).Methods("GET")

	// shipments
	r.HandleFunc("/shipments", middleware.CheckRole(handlers.CreateShipment, models.RoleOwner)).Methods("POST")
	r.HandleFunc("/shipments", middleware.CheckRole(handlers.GetShipmentsByOwner, models.RoleOwner)).Methods("GET")
	r.HandleFunc("/shipments/assigned", middleware.CheckAuth(handlers.GetAssignedShipments)).Methods("GET")
	r.HandleFunc("/shipments/{id}", middleware.CheckAuth(handlers.GetShipment)).Methods("GET")
	r.HandleFunc("/shipments/{shipmentId}/tracking", middleware.CheckRole(handlers.UpdateTrackingStatus, models.RoleOwner, models.RoleLogistic)).Methods("PATCH")

	// invitations
	r.HandleFunc("/invitations", middleware.CheckAuth(handlers.GetPendingInvitations)).Methods("GET")
	r.HandleFunc("/invitations/resolve", middleware.CheckAuth(handlers.ResolveInvitation)).Methods("POST")

	// quality assessments
	r.HandleFunc("/assessments", middleware.CheckRole(handlers.SubmitAssessment, models.RoleSupplierTeam, models.RoleLogisticTeam)).Methods("POST")
	r.HandleFunc("/assessments/pending", middleware.CheckAuth(handlers.GetPendingAssessments)).Methods("GET")
	r.HandleFunc("/assessments/{id}/resolve", middleware.CheckRole(handlers.ResolveAssessment, models.RoleOwner)).Methods("POST")

	// team members
	r.HandleFunc("/team-members", middleware.CheckAuth(handlers.AddTeamMembers)).Methods("POST")
	r.HandleFunc("/team-members", middleware.CheckAuth(handlers.GetTeamMembers)).Methods("GET")
	r.HandleFunc("/team-members/{id}", middleware.CheckAuth(handlers.UpdateTeamMember)).Methods("PUT")
	r.HandleFunc("/team-members/{id}", middleware.CheckAuth(handlers.DeleteTeamMember)).Methods("DELETE")

	// onboarding
	r.HandleFunc("/onboarding/{role}", middleware.CheckAuth(handlers.SaveCompany)).Methods("POST")
	r.HandleFunc("/companies/logistic/all", middleware.CheckRole(handlers.ListLogisticCompanies, models.RoleOwner)).Methods("GET")
	r.HandleFunc("/companies/{role}", middleware.CheckAuth(handlers.GetCompanyProfile)).Methods("GET")

	fmt.Println("Server is running at http://localhost:" + cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, r))
}
