// Package events defines the typed assistant event contract.
//
// Event kinds are grouped by receiver-facing namespaces:
//
//   - session.*
//   - state.*
//   - listening.*
//   - conversation.*
//   - capture.*
//   - assistant_reply.*
//
// session events
//
//   - SessionStarted (session.started): the assistant session came up and the
//     camera reported its readiness.
//
// state events
//
//   - StateChanged (state.changed): the assistant moved between Idle,
//     Listening and Processing; includes both endpoints.
//
// listening events
//
//   - ListeningStarted (listening.started): the microphone window opened.
//   - ListeningStopped (listening.stopped): the microphone window closed,
//     either by timeout or cancellation.
//
// conversation events
//
//   - MessageAppended (conversation.message_appended): a user or assistant
//     message was added to the conversation log.
//
// capture events
//
//   - FrameCaptured (capture.frame_acquired): a usable camera frame was
//     acquired; includes the frame size.
//   - CaptureFailed (capture.failed): all capture attempts for a query were
//     exhausted.
//
// assistant_reply events
//
//   - ReplySpoken (assistant_reply.spoken): a reply was handed to speech
//     output; includes the spoken text.
package events
