package main

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"taskdeck/internal/config"
	"taskdeck/internal/db"
	"taskdeck/internal/model"
	"taskdeck/internal/repository"
)

// demoPassword is shared by every seeded user. Seed data is for local
// development only.
const demoPassword = "password123"

type seedUser struct {
	FirstName string
	LastName  string
	Email     string
	Tasks     []seedTask
}

type seedTask struct {
	Title     string
	DueOffset int // days relative to today
	Completed bool
}

var fixtures = []seedUser{
	{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Tasks: []seedTask{
			{Title: "Submit expense report", DueOffset: -3},
			{Title: "Review pull requests", DueOffset: 0},
			{Title: "Plan sprint retro", DueOffset: 4},
			{Title: "Renew passport", DueOffset: -10, Completed: true},
		},
	},
	{
		FirstName: "Grace",
		LastName:  "Hopper",
		Email:     "grace@example.com",
		Tasks: []seedTask{
			{Title: "Water the plants", DueOffset: 0},
			{Title: "Book dentist appointment", DueOffset: 7},
		},
	},
}

func main() {
	log.Info("starting seed script")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to database")
	}

	if err := gormDB.AutoMigrate(&model.User{}, &model.Task{}); err != nil {
		log.WithError(err).Fatal("failed to run migrations")
	}

	userRepo := repository.NewUserRepository(gormDB)
	taskRepo := repository.NewTaskRepository(gormDB)
	ctx := context.Background()

	hashed, err := bcrypt.GenerateFromPassword([]byte(demoPassword), 10)
	if err != nil {
		log.WithError(err).Fatal("failed to hash demo password")
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	users, tasks := 0, 0
	for _, fixture := range fixtures {
		user, err := userRepo.FindByEmail(ctx, fixture.Email)
		if err == gorm.ErrRecordNotFound {
			user = &model.User{
				FirstName:    fixture.FirstName,
				LastName:     fixture.LastName,
				Email:        fixture.Email,
				PasswordHash: string(hashed),
			}
			if err := userRepo.Create(ctx, user); err != nil {
				log.WithError(err).WithField("email", fixture.Email).Fatal("failed to create user")
			}
			users++
		} else if err != nil {
			log.WithError(err).Fatal("failed to look up user")
		} else {
			log.WithField("email", fixture.Email).Info("user already seeded, skipping tasks")
			continue
		}

		for _, st := range fixture.Tasks {
			task := &model.Task{
				Title:     st.Title,
				DueDate:   today.AddDate(0, 0, st.DueOffset),
				Completed: st.Completed,
				UserID:    user.ID,
			}
			if err := taskRepo.Create(ctx, task); err != nil {
				log.WithError(err).WithField("title", st.Title).Fatal("failed to create task")
			}
			tasks++
		}
	}

	log.WithFields(log.Fields{"users": users, "tasks": tasks}).Info("seed completed")
}
