package handlers

import (
	"encoding/json"

	"mypresence/domain"
)

// toInstancesResponse converts the registry view to API response.
func toInstancesResponse(self domain.Instance, members []string) InstancesResponse {
	if members == nil {
		members = []string{}
	}
	return InstancesResponse{
		Self:    InstanceInfo{Name: self.Name, Host: self.Host},
		Members: members,
	}
}

// toValuesResponse converts stored values to API response. An absent key is an empty list.
func toValuesResponse(key string, values []json.RawMessage) ValuesResponse {
	if values == nil {
		values = []json.RawMessage{}
	}
	return ValuesResponse{Key: key, Values: values}
}
