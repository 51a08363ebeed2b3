package discovery

import (
	"errors"
	"testing"
	"time"

	consulapi "github.com/hashicorp/consul/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vasapolrittideah/task-tracker-api/shared/config"
)

type fakeAgent struct {
	registered   []*consulapi.AgentServiceRegistration
	deregistered []string
	err          error
}

func (a *fakeAgent) ServiceRegister(service *consulapi.AgentServiceRegistration) error {
	if a.err != nil {
		return a.err
	}
	a.registered = append(a.registered, service)
	return nil
}

func (a *fakeAgent) ServiceDeregister(serviceID string) error {
	if a.err != nil {
		return a.err
	}
	a.deregistered = append(a.deregistered, serviceID)
	return nil
}

var consulCfg = config.ConsulConfig{
	Address:       "consul:8500",
	ServiceHost:   "task-service",
	CheckInterval: 10 * time.Second,
	CheckTimeout:  2 * time.Second,
}

func TestRegistration(t *testing.T) {
	reg := Registration(consulCfg, "task-service", 3001)

	assert.Equal(t, "task-service-task-service-3001", reg.ID)
	assert.Equal(t, "task-service", reg.Name)
	assert.Equal(t, 3001, reg.Port)
	require.NotNil(t, reg.Check)
	assert.Equal(t, "http://task-service:3001/healthz", reg.Check.HTTP)
	assert.Equal(t, "10s", reg.Check.Interval)
	assert.Equal(t, "2s", reg.Check.Timeout)
}

func TestRegistrar_Lifecycle(t *testing.T) {
	agent := &fakeAgent{}
	r := NewRegistrar(agent, consulCfg, "auth-service", 3000)

	require.NoError(t, r.Register())
	require.Len(t, agent.registered, 1)
	assert.Equal(t, r.ServiceID(), agent.registered[0].ID)

	require.NoError(t, r.Deregister())
	assert.Equal(t, []string{r.ServiceID()}, agent.deregistered)
}

func TestRegistrar_Errors(t *testing.T) {
	agent := &fakeAgent{err: errors.New("agent unavailable")}
	r := NewRegistrar(agent, consulCfg, "auth-service", 3000)

	err := r.Register()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "auth-service-task-service-3000")
	assert.ErrorIs(t, err, agent.err)

	assert.Error(t, r.Deregister())
}
