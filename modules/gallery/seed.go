package gallery

import (
	"time"

	"github.com/google/uuid"
)

// Seed - the built-in demo gallery shown before the user uploads or remixes
// anything. Plain remote URLs, nothing is fetched at startup.
func Seed(store *Store) {
	now := time.Now()
	demos := []VideoRecord{
		{
			Title:       "Big Buck Bunny",
			Description: "A giant rabbit wakes up in a sunny meadow and stretches under a tree.",
			VideoURL:    "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/BigBuckBunny.mp4",
		},
		{
			Title:       "Elephants Dream",
			Description: "Two strange characters explore a vast surreal machine world.",
			VideoURL:    "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/ElephantsDream.mp4",
		},
		{
			Title:       "Sintel",
			Description: "A lone girl crosses snowy mountains searching for a baby dragon.",
			VideoURL:    "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/Sintel.mp4",
		},
		{
			Title:       "Tears of Steel",
			Description: "Soldiers face giant robots on a bridge in a ruined future city.",
			VideoURL:    "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/TearsOfSteel.mp4",
		},
	}

	for _, d := range demos {
		d.ID = uuid.New().String()
		d.CreatedAt = now
		store.Append(d)
	}
}
