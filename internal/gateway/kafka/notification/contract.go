//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=notification_test
package notification

import "github.com/IBM/sarama"

type producer interface {
	SendMessages(msgs []*sarama.ProducerMessage) error
}
