package kafka_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frontdesk/config"
	"frontdesk/infras/kafka"
)

type payload struct {
	CardID int64  `json:"card_id"`
	Kind   string `json:"kind"`
}

func TestMessage_ToKafkaMessage(t *testing.T) {
	message := kafka.Message{Key: "card-7", Value: payload{CardID: 7, Kind: "cash"}}

	msg, err := message.ToKafkaMessage()
	require.NoError(t, err)
	assert.Equal(t, []byte("card-7"), msg.Key)
	assert.JSONEq(t, `{"card_id": 7, "kind": "cash"}`, string(msg.Value))
}

func TestMessage_ToKafkaMessage_Unencodable(t *testing.T) {
	message := kafka.Message{Key: "k", Value: make(chan int)}

	_, err := message.ToKafkaMessage()

	assert.Error(t, err)
}

func TestNew_DisabledDropsMessages(t *testing.T) {
	cfg := &config.Config{}

	client := kafka.New(cfg)

	assert.False(t, client.Enabled())
	assert.NoError(t, client.SendMessages(context.Background(), "topic", kafka.Message{Key: "k", Value: 1}))
}
