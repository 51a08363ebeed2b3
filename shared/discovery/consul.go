// Package discovery registers services with a Consul agent.
package discovery

import (
	"fmt"

	consulapi "github.com/hashicorp/consul/api"

	"github.com/vasapolrittideah/task-tracker-api/shared/config"
)

// Agent is the subset of the Consul agent API used for registration.
type Agent interface {
	ServiceRegister(service *consulapi.AgentServiceRegistration) error
	ServiceDeregister(serviceID string) error
}

// Registrar registers a single service instance and removes it on shutdown.
type Registrar struct {
	agent        Agent
	registration *consulapi.AgentServiceRegistration
}

// NewConsulAgent builds an agent client for the configured Consul address.
func NewConsulAgent(cfg config.ConsulConfig) (Agent, error) {
	client, err := consulapi.NewClient(&consulapi.Config{Address: cfg.Address})
	if err != nil {
		return nil, fmt.Errorf("create consul client: %w", err)
	}

	return client.Agent(), nil
}

// NewRegistrar prepares the registration of serviceName listening on port.
// The agent checks GET /healthz over HTTP.
func NewRegistrar(agent Agent, cfg config.ConsulConfig, serviceName string, port int) *Registrar {
	return &Registrar{
		agent:        agent,
		registration: Registration(cfg, serviceName, port),
	}
}

// Registration builds the Consul service definition for one instance.
func Registration(cfg config.ConsulConfig, serviceName string, port int) *consulapi.AgentServiceRegistration {
	return &consulapi.AgentServiceRegistration{
		ID:      fmt.Sprintf("%s-%s-%d", serviceName, cfg.ServiceHost, port),
		Name:    serviceName,
		Address: cfg.ServiceHost,
		Port:    port,
		Tags:    []string{"http"},
		Check: &consulapi.AgentServiceCheck{
			HTTP:                           fmt.Sprintf("http://%s:%d/healthz", cfg.ServiceHost, port),
			Interval:                       cfg.CheckInterval.String(),
			Timeout:                        cfg.CheckTimeout.String(),
			DeregisterCriticalServiceAfter: "1m",
		},
	}
}

// ServiceID returns the instance ID used for registration.
func (r *Registrar) ServiceID() string {
	return r.registration.ID
}

// Register adds the service instance to the agent.
func (r *Registrar) Register() error {
	if err := r.agent.ServiceRegister(r.registration); err != nil {
		return fmt.Errorf("register service %s: %w", r.registration.ID, err)
	}
	return nil
}

// Deregister removes the service instance from the agent.
func (r *Registrar) Deregister() error {
	if err := r.agent.ServiceDeregister(r.registration.ID); err != nil {
		return fmt.Errorf("deregister service %s: %w", r.registration.ID, err)
	}
	return nil
}
