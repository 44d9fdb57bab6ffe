package bootstrap

import (
	"fmt"

	"github.com/Nazmul-SWE/FutureFinds-GadgetHub/pkg/config"
	"github.com/Nazmul-SWE/FutureFinds-GadgetHub/pkg/redis"
)

// SetupRedis initializes the Redis connection used by sessions and the
// rate limiter
func SetupRedis() {
	redis.ConnectRedis(
		fmt.Sprintf("%v:%v", config.GetString("redis.host"), config.GetString("redis.port")),
		config.GetString("redis.username"),
		config.GetString("redis.password"),
		config.GetInt("redis.database"),
	)
}
