package server

import (
	"encoding/json"
	"net/http"

	"github.com/Daskott/kontacts/index"
	"github.com/Daskott/kontacts/logic"
	"github.com/Daskott/kontacts/logic/commands"
	"github.com/Daskott/kontacts/messages"
	"github.com/gorilla/mux"
)

type ResponsePayload struct {
	Errors  []string    `json:"errors"`
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
}

type CommandRequest struct {
	Command string `json:"command"`
}

type handler struct {
	manager *logic.Manager
}

func (h *handler) listPersons(rw http.ResponseWriter, r *http.Request) {
	writeResponse(rw, ResponsePayload{Success: true, Data: h.manager.FilteredPersonList()}, http.StatusOK)
}

func (h *handler) executeCommand(rw http.ResponseWriter, r *http.Request) {
	data := CommandRequest{}
	err := json.NewDecoder(r.Body).Decode(&data)
	if err != nil {
		writeResponse(rw, ResponsePayload{Errors: []string{err.Error()}}, http.StatusBadRequest)
		return
	}

	result, err := h.manager.Execute(data.Command)
	writeCommandResponse(rw, result, err)
}

func (h *handler) deletePerson(rw http.ResponseWriter, r *http.Request) {
	targetIndex, err := index.Parse(mux.Vars(r)["index"])
	if err != nil {
		writeResponse(rw, ResponsePayload{Errors: []string{messages.MessageInvalidPersonDisplayedIndex}}, http.StatusBadRequest)
		return
	}

	result, err := h.manager.ExecuteCommand(commands.NewDeleteCommand(targetIndex, nil))
	writeCommandResponse(rw, result, err)
}

func (h *handler) deleteEmergencyContact(rw http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	targetIndex, err := index.Parse(vars["index"])
	if err != nil {
		writeResponse(rw, ResponsePayload{Errors: []string{messages.MessageInvalidPersonDisplayedIndex}}, http.StatusBadRequest)
		return
	}

	contactIndex, err := index.Parse(vars["ecIndex"])
	if err != nil {
		writeResponse(rw,
			ResponsePayload{Errors: []string{messages.MessageInvalidEmergencyContactDisplayedIndex}},
			http.StatusBadRequest,
		)
		return
	}

	descriptor := commands.NewDeleteCommandDescriptor()
	descriptor.SetEmergencyContactIndex(&contactIndex)

	result, err := h.manager.ExecuteCommand(commands.NewDeleteCommand(targetIndex, descriptor))
	writeCommandResponse(rw, result, err)
}
