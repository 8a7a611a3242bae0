package orchestration

import "strings"

// Canned assistant lines. These are spoken verbatim, keep them short and
// free of jargon.
const (
	greetingMessage = "Hi there! I'm your visual assistant. I can help describe what's around you. Press the Listen button and speak when you need assistance."

	cameraReadyMessage  = "Camera is ready. Press the Listen button and ask me what you'd like to know about your surroundings."
	cameraFailedMessage = "I couldn't access your camera. Please check your permissions and try again."

	noSpeechMessage       = "I didn't catch that. Could you please try speaking again?"
	transcriptionMessage  = "I'm having trouble understanding you. Please try again."
	recordingErrorMessage = "There was an error with the audio recording. Please try again."

	captureFailedMessage = "I couldn't capture a clear image. Please make sure there's enough light and try again."

	genericErrorMessage = "I'm sorry, I couldn't process your request. Please try again."
	imageErrorMessage   = "I had trouble processing the image. Could you try again with better lighting?"
	networkErrorMessage = "I'm having trouble connecting to the network. Please check your connection and try again."
	timeoutErrorMessage = "The request took too long to process. Please try again."
)

// errorApology picks the apology matching the failure. Vision clients embed
// the words "image", "network" or "timeout" in their errors for this.
func errorApology(err error) string {
	if err == nil {
		return genericErrorMessage
	}

	message := strings.ToLower(err.Error())
	switch {
	case strings.Contains(message, "image"):
		return imageErrorMessage
	case strings.Contains(message, "network"):
		return networkErrorMessage
	case strings.Contains(message, "timeout"):
		return timeoutErrorMessage
	}
	return genericErrorMessage
}
