package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"volunteerhub/pkg/auth"
	"volunteerhub/pkg/database"
	"volunteerhub/pkg/models"
	"volunteerhub/pkg/store"
)

// Seeds a demo organizer, volunteer, event, and two tasks for local
// development. Safe to re-run: existing accounts are left alone.
func main() {
	_ = godotenv.Load(".env")
	_ = godotenv.Load("../.env")

	db := database.InitDB()
	st := store.New(db)
	ctx := context.Background()

	hash, err := auth.HashPassword("changeme123")
	if err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}

	organizer := ensureUser(ctx, st, &models.Volunteer{
		Name: "Demo Organizer", Email: "organizer@example.org",
		PasswordHash: hash, Role: models.RoleOrganizer,
	})
	ensureUser(ctx, st, &models.Volunteer{
		Name: "Demo Volunteer", Email: "volunteer@example.org",
		PasswordHash: hash, Role: models.RoleVolunteer,
		Skills: []string{"first-aid", "cooking"},
	})

	event := &models.Event{
		Title:       "Riverside Cleanup",
		Description: "Community cleanup along the south bank",
		Lat:         51.5055, Lng: -0.0754,
		OrganizerID: organizer.ID,
	}
	if err := st.Events.Create(ctx, event); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}

	start := time.Now().Add(48 * time.Hour).Truncate(time.Hour)
	tasks := []*models.Task{
		{
			EventID: event.ID, Title: "First aid station",
			RequiredSkills: []string{"first-aid"},
			StartTime:      start, EndTime: start.Add(4 * time.Hour),
			MaxVolunteers: 2, Status: models.TaskOpen,
		},
		{
			EventID: event.ID, Title: "Food tent",
			RequiredSkills: []string{"cooking"},
			StartTime:      start.Add(4 * time.Hour), EndTime: start.Add(8 * time.Hour),
			MaxVolunteers: 3, Status: models.TaskOpen,
		},
	}
	for _, task := range tasks {
		if err := st.Tasks.Create(ctx, task); err != nil {
			fmt.Println("Error:", err)
			os.Exit(1)
		}
	}

	fmt.Printf("Seeded event %s with %d tasks\n", event.ID, len(tasks))
	fmt.Println("Accounts: organizer@example.org / volunteer@example.org (password: changeme123)")
}

func ensureUser(ctx context.Context, st *store.Store, u *models.Volunteer) *models.Volunteer {
	existing, err := st.Volunteers.FindByEmail(ctx, u.Email)
	if err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
	if existing != nil {
		return existing
	}
	if err := st.Volunteers.Create(ctx, u); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
	return u
}
