package main

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"mm-voicenote-be/internal/config"
	"mm-voicenote-be/internal/entity"
	"mm-voicenote-be/internal/pkg/logger"
	"mm-voicenote-be/internal/repository/implementation"
	"mm-voicenote-be/pkg/kv"
)

// Seeds the file store with the demo user and a couple of notes so the
// client has something to render on first run.
func main() {
	cfg := config.Load()

	store, err := kv.NewFileStore(cfg.Storage.FilePath)
	if err != nil {
		log.Fatalf("Failed to open storage file: %v", err)
	}

	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, false)
	noteRepo := implementation.NewNoteRepository(store, sysLogger)
	sessionRepo := implementation.NewSessionRepository(store, sysLogger)

	ctx := context.Background()

	user := &entity.User{
		Id:     "user_123",
		Name:   "Zaw Zaw",
		Email:  "zawzaw@example.com",
		Avatar: "https://picsum.photos/seed/zaw/200",
	}
	if err := sessionRepo.SetCurrentUser(ctx, user); err != nil {
		log.Fatalf("Failed to seed user: %v", err)
	}

	samples := []*entity.VoiceNote{
		{
			Id:            uuid.NewString(),
			UserId:        user.Id,
			Title:         "အပတ်စဉ် အစည်းအဝေး",
			OriginalText:  "ဒီတစ်ပတ် အစည်းအဝေးမှာ ပြောခဲ့တာတွေ...",
			RefinedText:   "ယခုအပတ် အစည်းအဝေးတွင် ဆွေးနွေးခဲ့သော အချက်များ။",
			Summary:       "အပတ်စဉ် အစည်းအဝေး မှတ်တမ်း။",
			Category:      "Work",
			Keywords:      []string{"အစည်းအဝေး", "အလုပ်"},
			Timestamp:     time.Now().Add(-48 * time.Hour).UnixMilli(),
			AudioDuration: 42.5,
		},
		{
			Id:            uuid.NewString(),
			UserId:        user.Id,
			Title:         "စိတ်ကူး မှတ်စု",
			OriginalText:  "အသစ် project အတွက် စိတ်ကူးတစ်ခု...",
			RefinedText:   "ပရောဂျက်အသစ်အတွက် အကြံဉာဏ်။",
			Summary:       "ပရောဂျက် စိတ်ကူး။",
			Category:      "Idea",
			Keywords:      []string{"စိတ်ကူး", "ပရောဂျက်"},
			Timestamp:     time.Now().Add(-2 * time.Hour).UnixMilli(),
			AudioDuration: 18.0,
		},
	}

	for _, n := range samples {
		if err := noteRepo.Save(ctx, n); err != nil {
			log.Fatalf("Failed to seed note %s: %v", n.Id, err)
		}
	}

	log.Printf("Seeded %d notes for user %s into %s", len(samples), user.Id, cfg.Storage.FilePath)
}
