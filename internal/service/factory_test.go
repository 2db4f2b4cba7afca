package service_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"basegraph.app/taskhub/common/logger"
	"basegraph.app/taskhub/internal/service"
)

var _ = Describe("Services", func() {
	It("works without an event producer", func() {
		stores := newMockStoreProvider()
		services := service.NewServices(service.ServicesConfig{
			Sessions: &mockSessionRunner{stores: stores},
		})

		_, err := services.Users().Create(context.Background(), "Ada", "ada@example.com")

		Expect(err).NotTo(HaveOccurred())
	})

	It("stamps events with the request id from the context", func() {
		events := &mockProducer{}
		services := service.NewServices(service.ServicesConfig{
			Sessions: &mockSessionRunner{stores: newMockStoreProvider()},
			Events:   events,
		})
		ctx := logger.WithLogFields(context.Background(), logger.LogFields{RequestID: logger.Ptr("req-1")})

		_, err := services.Tasks().MarkComplete(ctx, 1)

		Expect(err).NotTo(HaveOccurred())
		Expect(events.published).To(HaveLen(1))
		Expect(*events.published[0].RequestID).To(Equal("req-1"))
	})
})
