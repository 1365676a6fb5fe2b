package ws

import (
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/semantly-go/internal/model"
	"github.com/mcoot/semantly-go/internal/testutil"
)

type HubSuite struct {
	suite.Suite
	manager *HubManager
}

func TestHubSuite(t *testing.T) {
	suite.Run(t, new(HubSuite))
}

func (s *HubSuite) SetupTest() {
	s.manager = NewHubManager(testutil.NopLogger())
}

func testEvent(player, word string) model.GuessEvent {
	score := 42.0
	return model.GuessEvent{
		Guess:   model.Guess{Player: player, Guess: word, Score: &score},
		GameWon: false,
	}
}

// receive drains one message from the client without blocking the test
func (s *HubSuite) receive(client *Client) model.GuessEvent {
	select {
	case data := <-client.Send():
		var event model.GuessEvent
		s.Require().NoError(json.Unmarshal(data, &event))
		return event
	default:
		s.FailNow("expected a message but none was buffered")
		return model.GuessEvent{}
	}
}

func (s *HubSuite) TestSubscribeCreatesGroup() {
	client := NewClient(nil)

	s.manager.Subscribe("ABC1", client)

	s.Equal(1, s.manager.GroupCount())
}

func (s *HubSuite) TestPublishReachesAllSubscribers() {
	c1 := NewClient(nil)
	c2 := NewClient(nil)
	s.manager.Subscribe("ABC1", c1)
	s.manager.Subscribe("ABC1", c2)

	s.manager.Publish("ABC1", testEvent("alice", "sea"))

	e1 := s.receive(c1)
	e2 := s.receive(c2)
	s.Equal("alice", e1.Guess.Player)
	s.Equal("sea", e1.Guess.Guess)
	s.Equal(e1, e2)
}

func (s *HubSuite) TestPublishScopedToGameCode() {
	c1 := NewClient(nil)
	c2 := NewClient(nil)
	s.manager.Subscribe("ABC1", c1)
	s.manager.Subscribe("XYZ2", c2)

	s.manager.Publish("ABC1", testEvent("alice", "sea"))

	s.receive(c1)
	select {
	case <-c2.Send():
		s.FailNow("client on another game received the event")
	default:
	}
}

func (s *HubSuite) TestUnsubscribedClientReceivesNothing() {
	client := NewClient(nil)
	s.manager.Subscribe("ABC1", client)
	s.manager.Unsubscribe("ABC1", client)

	s.manager.Publish("ABC1", testEvent("alice", "sea"))

	// Unsubscribe closed the send channel without buffering anything
	data, ok := <-client.Send()
	s.False(ok)
	s.Nil(data)
}

func (s *HubSuite) TestEmptyGroupDiscarded() {
	c1 := NewClient(nil)
	c2 := NewClient(nil)
	s.manager.Subscribe("ABC1", c1)
	s.manager.Subscribe("ABC1", c2)

	s.manager.Unsubscribe("ABC1", c1)
	s.Equal(1, s.manager.GroupCount())

	s.manager.Unsubscribe("ABC1", c2)
	s.Equal(0, s.manager.GroupCount())
}

func (s *HubSuite) TestPublishUnknownCodeIsNoop() {
	s.manager.Publish("UNKNOWN", testEvent("alice", "sea"))

	s.Equal(0, s.manager.GroupCount())
}

func (s *HubSuite) TestUnsubscribeUnknownClientIsNoop() {
	client := NewClient(nil)

	s.manager.Unsubscribe("ABC1", client)

	s.Equal(0, s.manager.GroupCount())
}

func (s *HubSuite) TestFullBufferDropsInsteadOfBlocking() {
	client := NewClient(nil)
	s.manager.Subscribe("ABC1", client)

	for i := 0; i < sendBufferSize+5; i++ {
		s.manager.Publish("ABC1", testEvent("alice", "sea"))
	}

	// Publishing past the buffer must not block; the client still holds
	// a full buffer of messages
	s.Len(client.send, sendBufferSize)
}

func (s *HubSuite) TestConcurrentSubscribeUnsubscribe() {
	// A subscribe racing the departure of a group's last member must
	// still land in the live hub, not one already discarded from the map
	for i := 0; i < 500; i++ {
		c1 := NewClient(nil)
		c2 := NewClient(nil)
		s.manager.Subscribe("ABC1", c2)

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.manager.Subscribe("ABC1", c1)
		}()
		go func() {
			defer wg.Done()
			s.manager.Unsubscribe("ABC1", c2)
		}()
		wg.Wait()

		s.manager.Publish("ABC1", testEvent("alice", "sea"))
		s.receive(c1)

		s.manager.Unsubscribe("ABC1", c1)
		s.Require().Equal(0, s.manager.GroupCount())
	}
}

func (s *HubSuite) TestHubClientCount() {
	c1 := NewClient(nil)
	c2 := NewClient(nil)
	s.manager.Subscribe("ABC1", c1)
	s.manager.Subscribe("ABC1", c2)

	s.manager.mu.RLock()
	hub := s.manager.hubs["ABC1"]
	s.manager.mu.RUnlock()

	s.Require().NotNil(hub)
	s.Equal(2, hub.ClientCount())
}
