package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	apperrors "eventease-booking/pkg/app_errors"

	"github.com/redis/go-redis/v9"
)

// Reservation 單一票種的預扣數量
type Reservation struct {
	CategoryID int
	Quantity   int
}

type TicketInventoryGuard interface {
	// 預熱：計數尚未載入時寫入 capacity - held，已存在的計數不會被覆蓋
	WarmUp(ctx context.Context, categoryID int, capacity int, held int) error
	// 獲取：票種在 Redis 中的剩餘票數
	Remaining(ctx context.Context, categoryID int) (int, error)
	// 預扣：所有票種都足夠時才一起扣減 (使用Lua腳本確保原子性)
	Reserve(ctx context.Context, reservations []Reservation) error
	// 回滾：歸還預扣的票數
	Release(ctx context.Context, reservations []Reservation) error
	// 清除：票種數量調整後刪除計數，下次預熱重新計算
	Reset(ctx context.Context, categoryID int) error
}

type RedisTicketInventoryGuard struct {
	client *redis.Client
}

func NewRedisTicketInventoryGuard(client *redis.Client) TicketInventoryGuard {
	return &RedisTicketInventoryGuard{
		client: client,
	}
}

const (
	remainingField = "remaining"
	capacityField  = "capacity"
)

// 庫存 key
func infoKey(categoryID int) string {
	return fmt.Sprintf("ticket_category:%d:info", categoryID)
}

var warmUpScript = redis.NewScript(`
	if redis.call('EXISTS', KEYS[1]) == 1 then
		return 0
	end
	local remaining = tonumber(ARGV[1]) - tonumber(ARGV[2])
	if remaining < 0 then
		remaining = 0
	end
	redis.call('HSET', KEYS[1], 'remaining', remaining, 'capacity', ARGV[1])
	return 1
`)

var reserveScript = redis.NewScript(`
	-- 1. 先檢查所有票種，任何一個不足就整批失敗
	for i = 1, #KEYS do
		local remaining = redis.call('HGET', KEYS[i], 'remaining')
		if not remaining then
			return {-2, i} -- 錯誤：票種庫存未預熱
		end
		if tonumber(remaining) < tonumber(ARGV[i]) then
			return {-1, i} -- 錯誤：庫存不足
		end
	end

	-- 2. 執行扣減
	for i = 1, #KEYS do
		redis.call('HINCRBY', KEYS[i], 'remaining', -tonumber(ARGV[i]))
	end

	return {1, 0}
`)

// 已被 Reset 的 key 不重建；歸還後的剩餘票數不得超過預熱時的總量
var releaseScript = redis.NewScript(`
	for i = 1, #KEYS do
		if redis.call('EXISTS', KEYS[i]) == 1 then
			local remaining = redis.call('HINCRBY', KEYS[i], 'remaining', tonumber(ARGV[i]))
			local capacity = tonumber(redis.call('HGET', KEYS[i], 'capacity'))
			if capacity and remaining > capacity then
				redis.call('HSET', KEYS[i], 'remaining', capacity)
			end
		end
	end
	return "OK"
`)

func (g *RedisTicketInventoryGuard) WarmUp(ctx context.Context, categoryID int, capacity int, held int) error {
	return warmUpScript.Run(ctx, g.client, []string{infoKey(categoryID)}, capacity, held).Err()
}

func (g *RedisTicketInventoryGuard) Remaining(ctx context.Context, categoryID int) (int, error) {
	val, err := g.client.HGet(ctx, infoKey(categoryID), remainingField).Int()
	if errors.Is(err, redis.Nil) {
		return -1, apperrors.ErrInventoryNotLoaded
	}
	return val, err
}

func (g *RedisTicketInventoryGuard) Reserve(ctx context.Context, reservations []Reservation) error {
	keys, args := scriptArgs(reservations)
	if len(keys) == 0 {
		return nil
	}

	result, err := reserveScript.Run(ctx, g.client, keys, args...).Int64Slice()
	if err != nil {
		return err
	}
	if len(result) != 2 {
		return fmt.Errorf("unexpected reserve result: %v", result)
	}

	code, index := result[0], int(result[1])
	switch code {
	case 1:
		return nil
	case -1:
		return fmt.Errorf("%w: category %s", apperrors.ErrInsufficientTickets, keyCategory(reservations, index))
	case -2:
		return fmt.Errorf("%w: category %s", apperrors.ErrInventoryNotLoaded, keyCategory(reservations, index))
	default:
		return errors.New("unexpected result")
	}
}

func (g *RedisTicketInventoryGuard) Release(ctx context.Context, reservations []Reservation) error {
	keys, args := scriptArgs(reservations)
	if len(keys) == 0 {
		return nil
	}
	return releaseScript.Run(ctx, g.client, keys, args...).Err()
}

func (g *RedisTicketInventoryGuard) Reset(ctx context.Context, categoryID int) error {
	return g.client.Del(ctx, infoKey(categoryID)).Err()
}

// scriptArgs 數量為 0 的票種不需要預扣
func scriptArgs(reservations []Reservation) ([]string, []interface{}) {
	keys := make([]string, 0, len(reservations))
	args := make([]interface{}, 0, len(reservations))
	for _, r := range reservations {
		if r.Quantity <= 0 {
			continue
		}
		keys = append(keys, infoKey(r.CategoryID))
		args = append(args, r.Quantity)
	}
	return keys, args
}

// keyCategory Lua 回傳的 index 從 1 開始，且只計算數量大於 0 的票種
func keyCategory(reservations []Reservation, index int) string {
	n := 0
	for _, r := range reservations {
		if r.Quantity <= 0 {
			continue
		}
		n++
		if n == index {
			return strconv.Itoa(r.CategoryID)
		}
	}
	return "unknown"
}
