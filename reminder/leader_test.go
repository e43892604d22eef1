package reminder_test

import (
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"

	"github.com/hgapps/medicare-api/reminder"
)

func TestLeaderWithoutRedisAlwaysAcquires(t *testing.T) {
	leader := reminder.NewLeader(nil, "instance-a")
	assert.True(t, leader.Acquire(time.Now()))
}

func TestLeaderAcquiresFreeToken(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	mock.ExpectSetNX("reminder:leader", "instance-a", 15*time.Second).SetVal(true)

	leader := reminder.NewLeader(rdb, "instance-a")
	assert.True(t, leader.Acquire(time.Now()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLeaderDefersToOtherHolder(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	mock.ExpectSetNX("reminder:leader", "instance-b", 15*time.Second).SetVal(false)
	mock.ExpectGet("reminder:leader").SetVal("instance-a")

	leader := reminder.NewLeader(rdb, "instance-b")
	assert.False(t, leader.Acquire(time.Now()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLeaderHeartbeatsOwnToken(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	mock.ExpectSetNX("reminder:leader", "instance-a", 15*time.Second).SetVal(false)
	mock.ExpectGet("reminder:leader").SetVal("instance-a")
	mock.ExpectExpire("reminder:leader", 15*time.Second).SetVal(true)

	leader := reminder.NewLeader(rdb, "instance-a")
	assert.True(t, leader.Acquire(time.Now()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLeaderTreatsRedisErrorsAsNotLeader(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	mock.ExpectSetNX("reminder:leader", "instance-a", 15*time.Second).SetErr(assert.AnError)

	leader := reminder.NewLeader(rdb, "instance-a")
	assert.False(t, leader.Acquire(time.Now()))
}
