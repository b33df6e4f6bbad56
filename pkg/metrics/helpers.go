package metrics

import (
	"time"
)

type StorageOperation string

const (
	StorageOpRead   StorageOperation = "read"
	StorageOpInsert StorageOperation = "insert"
)

type StorageTimer struct {
	service   string
	backend   string
	operation StorageOperation
	start     time.Time
}

func NewStorageTimer(service, backend string, op StorageOperation) *StorageTimer {
	return &StorageTimer{
		service:   service,
		backend:   backend,
		operation: op,
		start:     time.Now(),
	}
}

func (st *StorageTimer) ObserveDuration() {
	duration := time.Since(st.start).Seconds()
	StorageOperationDuration.WithLabelValues(st.service, st.backend, string(st.operation)).Observe(duration)
}

func RecordStorageError(service, backend string, op StorageOperation) {
	StorageErrors.WithLabelValues(service, backend, string(op)).Inc()
}

func SetPrimaryReady(service, backend string, ready bool) {
	value := 0.0
	if ready {
		value = 1
	}
	StoragePrimaryReady.WithLabelValues(service, backend).Set(value)
}

type KafkaProduceTimer struct {
	service string
	topic   string
	start   time.Time
}

func NewKafkaProduceTimer(service, topic string) *KafkaProduceTimer {
	return &KafkaProduceTimer{
		service: service,
		topic:   topic,
		start:   time.Now(),
	}
}

func (kt *KafkaProduceTimer) Success() {
	KafkaMessagesProduced.WithLabelValues(kt.service, kt.topic).Inc()
	KafkaProduceDuration.WithLabelValues(kt.service, kt.topic).Observe(time.Since(kt.start).Seconds())
}

func (kt *KafkaProduceTimer) Error() {
	KafkaErrors.WithLabelValues(kt.service, kt.topic, "produce").Inc()
}
