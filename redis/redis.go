package redis

import (
	"context"

	"github.com/cloudflare/cfssl/log"
	"github.com/go-redis/redis/v8"
)

var ctx = context.Background()
var rdb = redis.NewClient(&redis.Options{
	Addr:     "127.0.0.1:6379",
	Password: "",
})

// 按配置重新初始化客户端
func InitRedis(addr string) {
	rdb = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: "",
	})
}

//set
func SetIntoRedis(key string, value string) error {
	err := rdb.Set(ctx, key, value, 0).Err()
	if err != nil {
		log.Errorf("redis set error: %s", err)
	}
	return err
}

//get，key不存在时返回空串
func GetFromRedis(key string) (string, error) {
	val, err := rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		log.Errorf("the key:%s does not exist\n", key)
		return "", nil
	} else if err != nil {
		return "", err
	}
	return val, nil
}

// list push
func PushToList(key string, value string) error {
	err := rdb.RPush(ctx, key, value).Err()
	if err != nil {
		log.Errorf("event push to list error: %s", err)
		return err
	}
	return nil
}
