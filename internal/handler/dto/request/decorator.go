package request

import "decor-market/internal/usecase/commands"

type ApplyDecoratorRequest struct {
	DisplayName string   `json:"display_name" binding:"required"`
	Specialties []string `json:"specialties,omitempty"`
}

func (r ApplyDecoratorRequest) ToInput() commands.ApplyDecoratorInput {
	return commands.ApplyDecoratorInput{
		DisplayName: r.DisplayName,
		Specialties: r.Specialties,
	}
}
