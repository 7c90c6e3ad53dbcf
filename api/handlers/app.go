package handlers

import (
	"strconv"

	"github.com/ecoquest/ecoquest/ecoquest"
	"github.com/ecoquest/ecoquest/ecoquest/database"
	"github.com/ecoquest/ecoquest/ecoquest/database/repositories"
	"github.com/ecoquest/ecoquest/ecoquest/quest"
	"github.com/ecoquest/ecoquest/ecoquest/quiz"
)

// App bundles the handler dependencies.
type App struct {
	Config   *ecoquest.Config
	DB       *database.DB
	Catalog  *quest.Catalog
	Quests   *quest.Service
	Quiz     *quiz.Service
	Users    *repositories.UserRepository
	Counters *repositories.CounterRepository
	Version  string
	Commit   string
}

// parseInt64 is a utility function to parse int64 from string
func parseInt64(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}
