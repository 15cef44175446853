package worker

import (
	"context"
	"log"
	"time"

	goredis "github.com/redis/go-redis/v9"

	redisClient "remix-gallery-server/modules/common/redis"
	"remix-gallery-server/modules/remix"
)

// StartWorker - drain the Redis queue and run remix jobs. Blocks forever;
// run it on its own goroutine.
func StartWorker(ctx context.Context, rdb *goredis.Client, service *remix.Service) {
	log.Println("🔄 Remix queue worker starting...")
	log.Printf("👀 Watching queue: %s", redisClient.QueueKey)

	for {
		// BRPOP blocks until a job id arrives
		result, err := rdb.BRPop(ctx, 0, redisClient.QueueKey).Result()
		if err != nil {
			if ctx.Err() != nil {
				log.Println("🛑 Worker stopping")
				return
			}
			log.Printf("❌ Redis BRPOP error: %v", err)
			time.Sleep(5 * time.Second)
			continue
		}

		// result[0] is the queue key, result[1] the job id
		jobID := result[1]
		log.Printf("🎯 Received new job: %s", jobID)

		go service.ProcessJob(ctx, jobID)
	}
}
