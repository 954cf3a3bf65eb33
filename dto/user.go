package dto

type UpdateProfileRequest struct {
	DisplayName *string `json:"display_name" binding:"omitempty,max=50"`
	AvatarURL   *string `json:"avatar_url" binding:"omitempty,url,max=500"`
	Bio         *string `json:"bio" binding:"omitempty,max=500"`
}

type UpdatePreferencesRequest struct {
	FocusMinutes          *int    `json:"focus_minutes" binding:"omitempty,min=1,max=120"`
	ShortBreakMinutes     *int    `json:"short_break_minutes" binding:"omitempty,min=1,max=60"`
	LongBreakMinutes      *int    `json:"long_break_minutes" binding:"omitempty,min=1,max=120"`
	SessionsUntilLongRest *int    `json:"sessions_until_long_rest" binding:"omitempty,min=1,max=12"`
	AutoStartBreaks       *bool   `json:"auto_start_breaks"`
	AutoStartFocus        *bool   `json:"auto_start_focus"`
	Theme                 *string `json:"theme" binding:"omitempty,oneof=light dark system"`
	SoundEnabled          *bool   `json:"sound_enabled"`
	NotificationsEnabled  *bool   `json:"notifications_enabled"`
}

type AdminUsersQuery struct {
	Page  int `form:"page" binding:"omitempty,min=1"`
	Limit int `form:"limit" binding:"omitempty,min=1"`
}

func (q *AdminUsersQuery) Normalize() {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = DefaultPageSize
	}
	if q.Limit > MaxPageSize {
		q.Limit = MaxPageSize
	}
}
