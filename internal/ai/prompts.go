package ai

const transcribePrompt = "Transcribe this audio file. Return only the transcription text, " +
	"without any introductions, comments or explanations."

const summarySystemPrompt = "You are an assistant that writes concise, well-structured summaries " +
	"of transcribed voice and video messages. You follow the requested output format exactly."

const summaryUserPromptTemplate = `Summarize the following transcript.

Format requirements:
1. Start the answer with a horizontal rule line: ---
2. The summary itself is at most 6 sentences.
3. Wrap the key phrases in **bold**.
4. Wrap numbers, dates and amounts in *italics*.
5. State the main topic in the first sentence.
6. If the transcript contains tasks or requests, list them as bullet points starting with "* ".
7. Close with a short analytical paragraph about the overall tone and intent.

Transcript:
%s`
